package container

import "log"

// QueueNode 先进先出队列中的节点
// 功能：表示队列中的一个元素，包含键值与主要值
// 说明：S通常为元素进入队列的时间，用于计算排队时长
type QueueNode[T any] struct {
	parent *Queue[T]
	next   *QueueNode[T]
	S      float64 // 键值（通常是进入时间）
	Value  T       // 主要值
}

// Next 获取节点的下一个节点
// 功能：返回队列中的后继节点
// 返回：后继节点指针，如果是最后一个节点则返回nil
func (n *QueueNode[T]) Next() *QueueNode[T] {
	return n.next
}

// Queue 先进先出队列
// 功能：实现一个通用的单向FIFO队列
// 说明：专门用于车道上的排队车辆管理，队首为最先进入的元素
type Queue[T any] struct {
	ID         string // 队列标识符
	head, tail *QueueNode[T]
	length     int
}

// Len 获取队列长度
// 功能：返回队列中的节点数量
// 返回：队列长度
func (q *Queue[T]) Len() int {
	return q.length
}

// First 获取队首节点
// 功能：返回队列的第一个节点（最早进入的元素）
// 返回：队首节点指针，如果队列为空则返回nil
func (q *Queue[T]) First() *QueueNode[T] {
	return q.head
}

// PushBack 向队尾插入节点
// 功能：在队列尾部添加一个新节点
// 参数：add-要插入的新节点
// 说明：如果节点已经属于其他队列则panic
func (q *Queue[T]) PushBack(add *QueueNode[T]) {
	if add.parent != nil {
		log.Panicf("container: push node who already in queue %v", add.parent.ID)
	}
	add.parent = q
	add.next = nil
	if q.tail == nil {
		q.head = add
	} else {
		q.tail.next = add
	}
	q.tail = add
	q.length++
}

// PopFront 移除并返回队首节点
// 功能：从队列头部移除最早进入的节点
// 返回：被移除的节点指针，如果队列为空则返回nil
func (q *Queue[T]) PopFront() *QueueNode[T] {
	node := q.head
	if node == nil {
		return nil
	}
	q.head = node.next
	if q.head == nil {
		q.tail = nil
	}
	node.parent = nil
	node.next = nil
	q.length--
	return node
}

// Values 获取队列中所有节点的值
// 功能：返回队列中所有节点的值数组（从队首到队尾）
// 返回：值数组
func (q *Queue[T]) Values() []T {
	values := make([]T, q.length)
	for i, node := 0, q.head; node != nil; i, node = i+1, node.next {
		values[i] = node.Value
	}
	return values
}
