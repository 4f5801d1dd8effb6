package config

const (
	defaultGreenTime = 30 // 默认初始绿灯时长（秒）
	defaultHeadway   = 2  // 默认饱和车头时距（秒/辆）
)

// RuntimeConfig 运行时配置
// 功能：存储仿真运行时的配置信息，包含填充默认值后的配置
// 说明：将YAML配置转换为运行时可用的配置对象
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，填充缺省值
// 参数：config-原始配置对象（应已通过Validate）
// 返回：初始化的运行时配置指针
// 说明：未指定的初始绿灯时长默认为30秒，车头时距默认为2秒
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	for i := range config.Lanes {
		if config.Lanes[i].Headway == 0 {
			config.Lanes[i].Headway = defaultHeadway
		}
	}
	for i := range config.Junctions {
		if config.Junctions[i].DefaultGreen == 0 {
			config.Junctions[i].DefaultGreen = defaultGreenTime
		}
	}

	rc.All = config
	rc.C = config.Control

	return rc
}
