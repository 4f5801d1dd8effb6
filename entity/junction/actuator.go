package junction

import (
	"fmt"

	"github.com/tsinghua-fib-lab/fuzzylight-sim/entity"
)

// localActuator 本地信号机执行器
// 功能：接收信控模块下发的相位切换命令
// 说明：进程内实现，代表外部信号机硬件；命令同步生效，
// 对相同目标相位的重复命令是幂等的
type localActuator struct {
	junctionID int32
}

// SetPhase 下发相位切换命令
// 功能：校验命令合法性并记录下发的相位
// 参数：junctionID-目标路口ID，phase-目标相位（固定编码）
// 返回：错误信息，路口ID不匹配或相位索引非法时返回错误
func (a *localActuator) SetPhase(junctionID int32, phase entity.Phase) error {
	if junctionID != a.junctionID {
		return fmt.Errorf("actuator: command for junction %d sent to junction %d", junctionID, a.junctionID)
	}
	if !phase.Valid() {
		return fmt.Errorf("actuator: junction %d got bad phase index %d", junctionID, int32(phase))
	}
	log.Debugf("junction %d: actuator set phase %v", junctionID, phase)
	return nil
}
