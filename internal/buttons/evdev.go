package buttons

import "encoding/binary"

// Linux input-event-codes.h
const (
	evKey = 0x01
	evAbs = 0x03

	keyEsc   = 1
	keyEnter = 28
	keyZ     = 44
	keySpace = 57
	keyF4    = 62
	keyUp    = 103
	keyLeft  = 105
	keyRight = 106
	keyDown  = 108

	btnSouth     = 0x130
	btnStart     = 0x13b
	btnDpadUp    = 0x220
	btnDpadDown  = 0x221
	btnDpadLeft  = 0x222
	btnDpadRight = 0x223

	absHat0X = 0x10
	absHat0Y = 0x11
)

var keyButtons = map[uint16]Button{
	keyUp:        Up,
	keyDown:      Down,
	keyLeft:      Left,
	keyRight:     Right,
	keySpace:     A,
	keyZ:         A,
	keyEnter:     Start,
	keyEsc:       Quit,
	keyF4:        Quit,
	btnDpadUp:    Up,
	btnDpadDown:  Down,
	btnDpadLeft:  Left,
	btnDpadRight: Right,
	btnSouth:     A,
	btnStart:     Start,
}

// padState folds the key and hat events of one device into the set of held
// buttons.
type padState struct {
	held map[uint16]bool
	hatX int32
	hatY int32
}

func (p *padState) apply(typ, code uint16, value int32) {
	switch typ {
	case evKey:
		if _, ok := keyButtons[code]; !ok {
			return
		}
		if p.held == nil {
			p.held = make(map[uint16]bool)
		}
		// 0 release, 1 press, 2 autorepeat
		if value == 0 {
			delete(p.held, code)
		} else {
			p.held[code] = true
		}
	case evAbs:
		switch code {
		case absHat0X:
			p.hatX = value
		case absHat0Y:
			p.hatY = value
		}
	}
}

func (p *padState) state() State {
	var st State
	for code := range p.held {
		st = st.With(keyButtons[code])
	}
	switch {
	case p.hatY < 0:
		st = st.With(Up)
	case p.hatY > 0:
		st = st.With(Down)
	}
	switch {
	case p.hatX < 0:
		st = st.With(Left)
	case p.hatX > 0:
		st = st.With(Right)
	}
	return st
}

// decodeEvents walks buf as a sequence of input_event records
// (timeval, u16 type, u16 code, s32 value) and returns the bytes consumed.
func decodeEvents(buf []byte, tvSize int, fn func(typ, code uint16, value int32)) int {
	eventSize := tvSize + 2 + 2 + 4
	off := 0
	for ; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		fn(typ, code, value)
	}
	return off
}
