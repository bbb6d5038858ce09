package world

import (
	"fmt"

	"github.com/lixenwraith/tilesight/logger"
	"github.com/lixenwraith/tilesight/spatial"
	"github.com/sirupsen/logrus"
)

// Portal is a one-way link indexed at its source tile.
type Portal struct {
	dstX, dstY int32
}

// Dst returns the tile the portal leads to.
func (p *Portal) Dst() (x, y int) { return int(p.dstX), int(p.dstY) }

// CreatePortal links (srcX, srcY) to (dstX, dstY). A tile can be the source
// of at most one portal.
func (m *Map) CreatePortal(srcX, srcY, dstX, dstY int) (spatial.Handle, error) {
	if _, _, ok := m.portals.At(srcX, srcY); ok {
		return spatial.Nil, fmt.Errorf("%w: (%d, %d)", ErrPortalExists, srcX, srcY)
	}
	h, p := m.portals.Alloc(srcX, srcY)
	p.dstX, p.dstY = int32(dstX), int32(dstY)

	logger.Component("world").WithFields(logrus.Fields{
		"src": [2]int{srcX, srcY},
		"dst": [2]int{dstX, dstY},
	}).Debug("portal created")
	return h, nil
}

// PortalAt returns the portal whose source is (x, y).
func (m *Map) PortalAt(x, y int) (*Portal, bool) {
	_, p, ok := m.portals.At(x, y)
	return p, ok
}

// PortalSrc returns the source tile of a portal handle.
func (m *Map) PortalSrc(h spatial.Handle) (x, y int) {
	return m.portals.Entry(h).Pos()
}

// RemovePortal deletes the portal at (x, y) and reports whether one existed.
func (m *Map) RemovePortal(x, y int) bool {
	h, _, ok := m.portals.At(x, y)
	if !ok {
		return false
	}
	return m.portals.Free(h)
}
