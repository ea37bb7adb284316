package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dsbox/dsbox/filesystem"
	"github.com/dsbox/dsbox/key"
	"github.com/dsbox/dsbox/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsJson, false)
			viper.Set(key.LogsLevel, "info")
			enabled = false
			logger = newDiscardLogger()
		})

		Convey("Should stay silent when logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
			So(func() { Infof("ignored %d", 1) }, ShouldNotPanic)
		})

		Convey("Should write to the daily log file when enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)

			Debugf("pushed %d", 3)
			WithFields(Fields{"len": 1}).Info("snapshot")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			content := string(lo.Must(filesystem.API().ReadFile(path)))
			So(content, ShouldContainSubstring, "pushed 3")
			So(content, ShouldContainSubstring, `"len":1`)
		})

		Convey("Should fall back to info for an unknown level", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "loud")
			So(Setup(), ShouldBeNil)
			So(logger.GetLevel().String(), ShouldEqual, "info")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			content := string(lo.Must(filesystem.API().ReadFile(path)))
			So(content, ShouldContainSubstring, "unknown log level")
		})
	})
}
