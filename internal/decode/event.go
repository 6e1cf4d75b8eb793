// internal/decode/event.go
package decode

import (
	"time"

	"github.com/tamzrod/tandem-decoder/internal/catalog"
)

// Event is one decoded pump event.
// It is a plain value, fully detached from the frame bytes it was
// built from; fields are already in natural units and zone-labeled.
type Event struct {
	TypeID    uint16          `json:"typeId"`
	Name      string          `json:"name"`
	Source    uint8           `json:"source"`
	Timestamp time.Time       `json:"timestamp"`
	SeqNum    uint32          `json:"seqNum"`
	Fields    []catalog.Field `json:"fields"`
}
