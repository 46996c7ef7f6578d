package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (suite *LoggerTestSuite) TestNew() {
	log, err := New("debug", false)
	suite.NoError(err)
	suite.NotNil(log.Logger)
	suite.True(log.Core().Enabled(zapcore.DebugLevel))
}

func (suite *LoggerTestSuite) TestNewUnknownLevelFallsBackToInfo() {
	log, err := New("loud", true)
	suite.NoError(err)
	suite.False(log.Core().Enabled(zapcore.DebugLevel))
	suite.True(log.Core().Enabled(zapcore.InfoLevel))
}

func (suite *LoggerTestSuite) TestSyncNilLogger() {
	log := &Logger{Logger: nil}
	suite.NoError(log.Sync())
}

func (suite *LoggerTestSuite) TestNopAndNamed() {
	log := Nop().Named("scheduler")
	suite.NotNil(log)
	log.Info("discarded")
}
