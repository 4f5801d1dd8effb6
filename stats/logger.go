package stats

import "github.com/sirupsen/logrus"

// log 统计模块的日志记录器
var log = logrus.WithField("module", "stats")
