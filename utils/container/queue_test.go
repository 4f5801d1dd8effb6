package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/fuzzylight-sim/utils/container"
)

func TestQueueInit(t *testing.T) {
	q := &container.Queue[int]{}
	assert.Nil(t, q.First())
	assert.Nil(t, q.PopFront())
	assert.Equal(t, 0, q.Len())
}

func TestQueueFIFO(t *testing.T) {
	q := &container.Queue[int]{}

	// test: push

	n1 := &container.QueueNode[int]{S: 1, Value: 10}
	n2 := &container.QueueNode[int]{S: 2, Value: 20}
	n3 := &container.QueueNode[int]{S: 3, Value: 30}
	q.PushBack(n1)
	q.PushBack(n2)
	q.PushBack(n3)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{10, 20, 30}, q.Values())

	// test: first next

	n := q.First()
	assert.Equal(t, n1, n)
	assert.Equal(t, n2, n.Next())
	assert.Equal(t, n3, n.Next().Next())
	assert.Nil(t, n.Next().Next().Next())

	// test: pop

	assert.Equal(t, n1, q.PopFront())
	assert.Equal(t, n2, q.PopFront())
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, n3, q.First())
	assert.Equal(t, n3, q.PopFront())
	assert.Nil(t, q.PopFront())
	assert.Equal(t, 0, q.Len())
}

func TestQueuePushPopReuse(t *testing.T) {
	q := &container.Queue[int]{}
	n := &container.QueueNode[int]{S: 1, Value: 1}
	q.PushBack(n)
	q.PopFront()
	// 弹出后节点可重新入队
	q.PushBack(n)
	assert.Equal(t, 1, q.Len())
}

func TestPriorityQueue(t *testing.T) {
	pq := container.NewPriorityQueue[string]()
	pq.HeapPush("c", 3)
	pq.HeapPush("a", 1)
	pq.HeapPush("b", 2)
	assert.Equal(t, 3, pq.Len())

	v, p := pq.First()
	assert.Equal(t, "a", v)
	assert.Equal(t, 1.0, p)

	v, p = pq.HeapPop()
	assert.Equal(t, "a", v)
	assert.Equal(t, 1.0, p)
	v, _ = pq.HeapPop()
	assert.Equal(t, "b", v)
	v, _ = pq.HeapPop()
	assert.Equal(t, "c", v)
	assert.Equal(t, 0, pq.Len())
}
