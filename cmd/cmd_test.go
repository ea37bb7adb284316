package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsbox/dsbox/config"
	"github.com/dsbox/dsbox/filesystem"
	"github.com/dsbox/dsbox/key"
	"github.com/dsbox/dsbox/profile"
	"github.com/dsbox/dsbox/script"
	"github.com/dsbox/dsbox/stack"
	"github.com/dsbox/dsbox/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func execute(args ...string) {
	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
}

func TestParseValue(t *testing.T) {
	Convey("parseValue", t, func() {
		Convey("Should follow the type of the default value", func() {
			So(lo.Must(parseValue(key.StackGrowthFactor, []string{"1.5"})), ShouldEqual, 1.5)
			So(lo.Must(parseValue(key.TUIUndoLimit, []string{"8"})), ShouldEqual, 8)
			So(lo.Must(parseValue(key.LogsWrite, []string{"true"})), ShouldEqual, true)
			So(lo.Must(parseValue(key.IconsVariant, []string{"emoji"})), ShouldEqual, "emoji")
		})

		Convey("Should reject malformed input", func() {
			_, err := parseValue(key.StackGrowthFactor, []string{"fast"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(key.BenchSize, []string{"1e3"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestErrUnknownKey(t *testing.T) {
	Convey("errUnknownKey should suggest the closest key", t, func() {
		err := errUnknownKey("stack.growth_factr")
		So(err.Error(), ShouldContainSubstring, key.StackGrowthFactor)
	})
}

func TestCompletionConfigKeys(t *testing.T) {
	Convey("completionConfigKeys should filter keys fuzzily", t, func() {
		keys, _ := completionConfigKeys(nil, nil, "shrink")
		So(keys, ShouldResemble, []string{key.StackShrinkThreshold})

		all, _ := completionConfigKeys(nil, nil, "")
		So(all, ShouldHaveLength, key.DefinedFieldsCount)
	})
}

func TestExposedEnv(t *testing.T) {
	Convey("exposedEnv should list prefixed variables and the config path", t, func() {
		env := exposedEnv()
		So(env, ShouldContain, "DSBOX_STACK_GROWTH_FACTOR")
		So(env, ShouldContain, where.EnvConfigPath)
		So(env, ShouldHaveLength, key.DefinedFieldsCount+1)
	})
}

func TestWriteBench(t *testing.T) {
	Convey("writeBench", t, func() {
		result := lo.Must(profile.Run(9, stack.DefaultConfig()))

		var buf bytes.Buffer
		So(writeBench(&buf, result, 80), ShouldBeNil)

		output := buf.String()
		Convey("Should print one row per growth", func() {
			So(strings.Count(output, "→"), ShouldEqual, len(result.Growths))
		})

		Convey("Should print the totals", func() {
			So(output, ShouldContainSubstring, "5 growths")
			So(output, ShouldContainSubstring, "capacity 16")
		})
	})
}

func TestReportSchema(t *testing.T) {
	Convey("reportSchema should describe the report fields", t, func() {
		schema := reportSchema()
		So(schema.Definitions, ShouldContainKey, "Report")

		_, ok := schema.Definitions["Report"].Properties.Get("steps")
		So(ok, ShouldBeTrue)
	})
}

func TestStackCommand(t *testing.T) {
	Convey("stack --output", t, func() {
		path := filepath.Join(where.Config(), "report.json")
		execute("stack", "--from", "a,b", "--output", path, "--json", "push", "c", "pop", "pop")

		var report script.Report
		So(json.Unmarshal(lo.Must(filesystem.API().ReadFile(path)), &report), ShouldBeNil)

		// seeded with a and b, so the second pop reaches the seed
		So(report.Steps, ShouldHaveLength, 3)
		So(report.Steps[1].Result, ShouldEqual, "c")
		So(report.Steps[2].Result, ShouldEqual, "b")
		So(report.Final, ShouldResemble, []string{"a"})
		So(report.Len, ShouldEqual, 1)
	})
}

func TestWriteReportFile(t *testing.T) {
	Convey("writeReportFile", t, func() {
		report := lo.Must(script.Run(lo.Must(script.ParseString("push 1 peek")), &script.Options{Config: stack.DefaultConfig()}))

		Convey("Should write the text report", func() {
			path := filepath.Join(where.Config(), "report.txt")
			So(writeReportFile(path, report, false), ShouldBeNil)
			So(string(lo.Must(filesystem.API().ReadFile(path))), ShouldContainSubstring, "final: [1]")
		})
	})
}

func TestClearCommand(t *testing.T) {
	Convey("clear --logs", t, func() {
		logs := where.Logs()
		lo.Must0(filesystem.API().WriteFile(filepath.Join(logs, "old.log"), []byte("line"), 0o644))

		execute("clear", "--logs")

		So(lo.Must(filesystem.API().Exists(logs)), ShouldBeFalse)
	})
}
