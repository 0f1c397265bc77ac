package showmore

import (
	"slices"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type options struct {
	pageSize int
	logger   zerolog.Logger
}

// Option configures a Controller.
type Option func(*options)

// WithPageSize sets the number of items revealed per activation.
// NormalizePageSize is applied to the value.
func WithPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = NormalizePageSize(size)
	}
}

// WithLogger sets the logger used for debug tracing. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Controller reveals a fixed, ordered list of items page by page.
//
// The first Cursor() items are visible, the rest are hidden. Cursor only
// grows, in steps of PageSize() clamped to Len(), and once it reaches Len()
// the controller is terminal and its control stays hidden.
//
// Controller is not safe for concurrent use.
type Controller[T Item] struct {
	items       []T
	control     Control
	pageSize    int
	cursor      int
	initialized bool
	logger      zerolog.Logger
}

// New captures items and control. The item list is copied, so later changes
// to the caller's slice do not affect the controller. control may be nil: the
// controller then never receives activations and never toggles an affordance.
func New[T Item](items []T, control Control, opts ...Option) *Controller[T] {
	o := options{
		pageSize: DefaultPageSize,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &Controller[T]{
		items:    slices.Clone(items),
		control:  control,
		pageSize: o.pageSize,
		logger:   o.logger,
	}
}

// Initialize handles the page-ready signal: it hides everything past the
// first page, subscribes RevealNext to the control and updates the
// affordance. Subsequent calls are no-ops.
func (c *Controller[T]) Initialize() {
	if c == nil || c.initialized {
		return
	}
	c.initialized = true

	c.cursor = min(c.pageSize, len(c.items))
	c.setHidden(c.cursor, len(c.items), true)

	if c.control != nil {
		c.control.Subscribe(func() { c.RevealNext() })
	} else {
		c.logger.Debug().Msg("no control attached, reveal is unreachable")
	}

	c.logger.Debug().
		Int("cursor", c.cursor).
		Int("len", len(c.items)).
		Int("page_size", c.pageSize).
		Msg("paging initialized")

	c.evaluate()
}

// RevealNext makes the next batch of hidden items visible and returns how
// many were revealed. It is a no-op before Initialize and once every item is
// visible.
func (c *Controller[T]) RevealNext() int {
	if c == nil || !c.initialized || c.IsExhausted() {
		return 0
	}

	next := lo.Clamp(c.cursor+c.pageSize, c.cursor, len(c.items))
	c.setHidden(c.cursor, next, false)

	revealed := next - c.cursor
	c.cursor = next

	c.logger.Debug().
		Int("revealed", revealed).
		Int("cursor", c.cursor).
		Int("len", len(c.items)).
		Msg("items revealed")

	c.evaluate()

	return revealed
}

// evaluate shows the control iff hidden items remain.
func (c *Controller[T]) evaluate() {
	if c.control == nil {
		return
	}

	visible := c.HasMore()
	c.control.SetVisible(visible)

	if !visible {
		c.logger.Debug().Msg("paging exhausted, control hidden")
	}
}

func (c *Controller[T]) setHidden(from, to int, hidden bool) {
	for _, item := range c.items[from:to] {
		// Nil entries still count towards Len.
		if lo.IsNil(item) {
			continue
		}
		item.SetHidden(hidden)
	}
}

// Cursor returns the number of visible items, counted from the start.
func (c *Controller[T]) Cursor() int {
	if c == nil {
		return 0
	}

	return c.cursor
}

// Len returns the number of items captured at construction.
func (c *Controller[T]) Len() int {
	if c == nil {
		return 0
	}

	return len(c.items)
}

// PageSize returns the number of items revealed per activation.
func (c *Controller[T]) PageSize() int {
	if c == nil {
		return 0
	}

	return c.pageSize
}

// Remaining returns the number of hidden items.
func (c *Controller[T]) Remaining() int {
	return c.Len() - c.Cursor()
}

// HasMore reports whether hidden items remain, which is exactly when the
// control should be visible.
func (c *Controller[T]) HasMore() bool {
	return c.Cursor() < c.Len()
}

// IsExhausted reports whether every item is visible.
func (c *Controller[T]) IsExhausted() bool {
	return !c.HasMore()
}

// IsInitialized reports whether Initialize has run.
func (c *Controller[T]) IsInitialized() bool {
	return c != nil && c.initialized
}

// State returns the derived lifecycle state.
func (c *Controller[T]) State() State {
	return lo.Ternary(c.HasMore(), StatePaging, StateExhausted)
}

// Visible returns a copy of the currently visible items.
func (c *Controller[T]) Visible() []T {
	if c == nil {
		return nil
	}

	return slices.Clone(c.items[:c.cursor])
}
