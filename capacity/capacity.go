package capacity

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Configuration error classes.
var (
	WidthError    = errs.Class("invalid width")
	CapacityError = errs.Class("width exceeds storage category")
)

// Category is a storage category.
type Category struct {
	// Bits is the capacity of the native word. Zero for the automatic and
	// the multi-block categories.
	Bits int
	Abbr string
}

// Fits returns true if width bits can be held by this category.
func (c Category) Fits(width int) bool {
	if width <= 0 {
		return false
	}

	if c == Multi {
		return true
	}

	return width <= c.Bits
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if c.Abbr == "" {
		return "auto"
	}

	return c.Abbr
}

type categories []Category

// Match returns the first category in the ladder that fits width.
func (cs categories) Match(width int) (c Category, ok bool) {
	for _, c := range cs {
		if c.Fits(width) {
			return c, true
		}
	}

	return c, false
}

// Storage categories
var (
	Auto  = Category{}
	U8    = Category{8, "u8"}
	U16   = Category{16, "u16"}
	U32   = Category{32, "u32"}
	U64   = Category{64, "u64"}
	Multi = Category{0, "m"}

	// Ladder is the native categories in ascending order.
	Ladder = categories{
		U8,
		U16,
		U32,
		U64,
	}
)

// Capacity is the resolved storage for a width.
type Capacity struct {
	Category Category
	Width    int

	// Bytes is the storage footprint.
	Bytes int

	// Mask covers the low min(Width, 64) bits.
	Mask uint64

	// TopMask covers the used bits of the most significant byte of the
	// pattern when laid out in ceil(Width/8) bytes.
	TopMask byte
}

// Native returns true if the capacity is backed by a native word.
func (c Capacity) Native() bool {
	return c.Category != Multi
}

// String implements fmt.Stringer.
func (c Capacity) String() string {
	return fmt.Sprintf("%s/%d", c.Category, c.Width)
}

// Resolve returns the smallest capacity able to hold width bits.
func Resolve(width int) (c Capacity, err error) {
	return ResolveIn(width, Auto)
}

// ResolveIn returns the capacity for width bits stored in category cat. Auto
// picks the category from the ladder.
func ResolveIn(width int, cat Category) (c Capacity, err error) {
	if width <= 0 {
		return c, WidthError.New("width=%d", width)
	}

	if cat == Auto {
		var ok bool

		cat, ok = Ladder.Match(width)
		if !ok {
			cat = Multi
		}
	}

	if !cat.Fits(width) {
		return c, CapacityError.New("width=%d category=%s", width, cat)
	}

	c = Capacity{
		Category: cat,
		Width:    width,
		Mask:     mask(width),
	}

	if cat == Multi {
		c.Bytes = (width + 7) / 8
	} else {
		c.Bytes = cat.Bits / 8
	}

	top := width % 8
	if top == 0 {
		top = 8
	}
	c.TopMask = byte(uint(1)<<uint(top) - 1)

	return c, nil
}

// MustResolve is like Resolve but panics on configuration errors.
func MustResolve(width int) Capacity {
	c, err := Resolve(width)
	if err != nil {
		panic(err)
	}

	return c
}

// mask returns the low word mask for width. Shifting a uint64 by 64 or more
// yields zero, so widths of 64 and beyond produce an all ones mask.
func mask(width int) uint64 {
	return uint64(1)<<uint(width) - 1
}
