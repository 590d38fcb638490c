package system

type logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Console switches the active virtual terminal into graphics mode while a
// framebuffer frontend owns the screen, and restores it afterwards.
// Every step is best-effort: failures are logged, never returned.
type Console struct {
	Logger logger

	graphics bool
	hidden   bool
}

func (c *Console) Acquire() {
	if err := SetGraphicsMode(); err != nil {
		c.errorf("KD_GRAPHICS failed: %v", err)
	} else {
		c.graphics = true
		c.infof("KD_GRAPHICS set")
	}
	if err := HideCursor(); err != nil {
		c.errorf("hide cursor failed: %v", err)
	} else {
		c.hidden = true
		c.infof("cursor hidden")
	}
}

func (c *Console) Release() {
	if c.hidden {
		if err := ShowCursor(); err != nil {
			c.errorf("show cursor failed: %v", err)
		} else {
			c.infof("cursor shown")
		}
		c.hidden = false
	}
	if c.graphics {
		if err := RestoreTextMode(); err != nil {
			c.errorf("KD_TEXT failed: %v", err)
		} else {
			c.infof("KD_TEXT set")
		}
		c.graphics = false
	}
}

func (c *Console) infof(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Infof("tty", format, args...)
	}
}

func (c *Console) errorf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Errorf("tty", format, args...)
	}
}

// HideCursor writes the ANSI escape to hide the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }
