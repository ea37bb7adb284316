package where

import (
	"path/filepath"
	"testing"

	"github.com/dsbox/dsbox/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override", func() {
			t.Setenv(EnvConfigPath, filepath.Join("custom", "dsbox"))
			So(Config(), ShouldEqual, filepath.Join("custom", "dsbox"))
			So(lo.Must(filesystem.API().IsDir(Config())), ShouldBeTrue)
		})

		Convey("ConfigFile()", func() {
			So(filepath.Base(ConfigFile()), ShouldEqual, "dsbox.toml")
			So(filepath.Dir(ConfigFile()), ShouldEqual, Config())
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}
