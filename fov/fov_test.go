package fov

import (
	"testing"

	"github.com/lixenwraith/tilesight/world"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCastOpenRoom(t *testing.T) {
	Convey("Given an open map and the default view distance", t, func() {
		m, scratch := newTestWorld()
		c := New(m, DefaultOptions(), scratch)
		rec := newRecorder()

		Convey("When casting from the origin", func() {
			c.Cast(0, 0, rec)

			Convey("The camera tile is rendered first", func() {
				So(rec.order[0], ShouldResemble, pos{0, 0})
			})

			Convey("Every tile within Chebyshev 12 is rendered exactly once", func() {
				for y := -14; y <= 14; y++ {
					for x := -14; x <= 14; x++ {
						want := 0
						if chebyshev(x, y, 0, 0) <= 12 {
							want = 1
						}
						So(rec.calls[pos{x, y}], ShouldEqual, want)
					}
				}
				So(len(rec.order), ShouldEqual, 25*25)
				So(c.Rendered(), ShouldEqual, 25*25)
			})

			Convey("The visibility mask matches the render calls", func() {
				So(c.Visible(12, -12), ShouldBeTrue)
				So(c.Visible(13, 0), ShouldBeFalse)
				So(c.Mask().Count(), ShouldEqual, 25*25)
			})
		})

		Convey("When casting from a negative coordinate", func() {
			c.Cast(-40, -70, rec)
			So(len(rec.order), ShouldEqual, 25*25)
			So(rec.seen(-52, -58), ShouldBeTrue)
			So(rec.seen(-53, -70), ShouldBeFalse)
		})
	})
}

func TestCastViewDistance(t *testing.T) {
	Convey("Given a view distance of 3", t, func() {
		m, scratch := newTestWorld()
		opts := DefaultOptions()
		opts.ViewDistance = 3
		c := New(m, opts, scratch)
		rec := newRecorder()
		c.Cast(5, 5, rec)

		So(c.Reach(), ShouldEqual, 3)
		So(len(rec.order), ShouldEqual, 49)
		So(rec.seen(8, 2), ShouldBeTrue)
		So(rec.seen(9, 5), ShouldBeFalse)
	})

	Convey("Given a view distance of zero", t, func() {
		m, scratch := newTestWorld()
		opts := DefaultOptions()
		opts.ViewDistance = 0
		c := New(m, opts, scratch)
		rec := newRecorder()
		c.Cast(0, 0, rec)

		So(rec.order, ShouldResemble, []pos{{0, 0}})
	})
}

func TestCastWall(t *testing.T) {
	Convey("Given a single wall directly north of the camera", t, func() {
		m, scratch := newTestWorld()
		m.TerraPut(0, -1, world.Wall)
		c := New(m, DefaultOptions(), scratch)
		rec := newRecorder()
		c.Cast(0, 0, rec)

		Convey("The wall face itself is rendered", func() {
			So(rec.seen(0, -1), ShouldBeTrue)
			So(rec.tiles[pos{0, -1}], ShouldResemble, world.Wall.Tile)
		})

		Convey("Tiles due north beyond it are hidden", func() {
			for k := 2; k <= 12; k++ {
				So(rec.seen(0, -k), ShouldBeFalse)
			}
		})

		Convey("Tiles diagonally past the wall stay visible", func() {
			So(rec.seen(-1, -2), ShouldBeTrue)
			So(rec.seen(1, -2), ShouldBeTrue)
			So(rec.seen(-1, -1), ShouldBeTrue)
			So(rec.seen(1, -1), ShouldBeTrue)
		})

		Convey("No tile is rendered twice", func() {
			for _, n := range rec.calls {
				So(n, ShouldEqual, 1)
			}
		})
	})
}

func TestCastOpacity(t *testing.T) {
	glass := world.Terra{Tile: world.Tile{Glyph: '"', Atlas: 2, FG: 6}, BlocksView: true}

	Convey("Given a tile that blocks sight but not movement", t, func() {
		m, scratch := newTestWorld()
		m.TerraPut(0, -1, glass)

		Convey("The default opacity sees through it", func() {
			c := New(m, DefaultOptions(), scratch)
			rec := newRecorder()
			c.Cast(0, 0, rec)
			So(rec.seen(0, -3), ShouldBeTrue)
		})

		Convey("BlocksView opacity stops at it", func() {
			opts := DefaultOptions()
			opts.Opacity = BlocksView
			c := New(m, opts, scratch)
			rec := newRecorder()
			c.Cast(0, 0, rec)
			So(rec.seen(0, -1), ShouldBeTrue)
			So(rec.seen(0, -3), ShouldBeFalse)
		})
	})
}

func TestCastEnclosed(t *testing.T) {
	Convey("Given a camera boxed in by walls", t, func() {
		m, scratch := newTestWorld()
		for y := -1; y <= 1; y++ {
			for x := -1; x <= 1; x++ {
				if x != 0 || y != 0 {
					m.TerraPut(x, y, world.Wall)
				}
			}
		}
		c := New(m, DefaultOptions(), scratch)
		rec := newRecorder()
		c.Cast(0, 0, rec)

		So(len(rec.order), ShouldEqual, 9)
		So(rec.seen(0, 2), ShouldBeFalse)
	})
}
