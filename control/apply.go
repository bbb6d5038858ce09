package control

import (
	"strings"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/logger"
	"github.com/lixenwraith/tilesight/spatial"
	"github.com/lixenwraith/tilesight/world"
)

// Apply performs a on the mobile h and reports whether the world changed.
// Quit and None are not world actions and report false.
func Apply(m *world.Map, h spatial.Handle, a Action, scratch *arena.Arena) bool {
	log := logger.Component("control").WithField("action", a.String())

	switch {
	case a.IsMove():
		dx, dy := a.Delta()
		return m.MoveMobile(h, dx, dy)

	case a == ActionPickUp:
		item, ok := m.PickUp(h)
		if ok {
			log.WithField("item", m.Mobile(item).Name()).Info("picked up")
		}
		return ok

	case a == ActionDrop:
		item, ok := m.Drop(h)
		if ok {
			log.WithField("item", m.Mobile(item).Name()).Info("dropped")
		}
		return ok

	case a == ActionInventory:
		var names []string
		scratch.Scope(func() {
			for _, item := range m.Inventory(h, scratch) {
				names = append(names, m.Mobile(item).Name())
			}
		})
		log.WithField("items", strings.Join(names, ", ")).Info("inventory")
	}
	return false
}
