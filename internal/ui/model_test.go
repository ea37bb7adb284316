package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Notification model", t, func() {
		m := &Model{}

		Convey("Should pass content through when idle", func() {
			So(m.View("body"), ShouldEqual, "body")
		})

		Convey("Should show a notification and schedule its removal", func() {
			cmd := m.Update(Notify("pushed 1")())
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "pushed 1")
			So(m.View("a\nb"), ShouldStartWith, "a\nb")
			So(m.View("a\nb"), ShouldContainSubstring, "pushed 1")
		})

		Convey("Should only clear the notification the tick was scheduled for", func() {
			m.Update(Notification("first"))
			stale := ClearNotificationMsg{at: m.notifiedAt.Add(-1)}
			m.Update(stale)
			So(m.Current(), ShouldEqual, "first")

			m.Update(ClearNotificationMsg{at: m.notifiedAt})
			So(m.Current(), ShouldBeEmpty)
		})
	})
}
