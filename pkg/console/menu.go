// Package console is a small line-oriented menu router: entries are
// registered under a key, grouped into sub-menus and wrapped by middleware,
// then dispatched from whatever the user types.
package console

import (
	"context"
	"errors"
	"io"
	"strings"
)

// ExitKey leaves the current menu.
const ExitKey = "0"

// HandlerFunc runs one menu entry.
type HandlerFunc func(c *Ctx) error

// Middleware wraps every handler of a menu and its sub-menus.
type Middleware func(next HandlerFunc) HandlerFunc

type entry struct {
	key     string
	title   string
	handler HandlerFunc
	sub     *Menu
}

// Menu is a numbered list of entries.
type Menu struct {
	title      string
	exitTitle  string
	parent     *Menu
	entries    []*entry
	middleware []Middleware
}

// New creates a top-level menu.
func New(title string) *Menu {
	return &Menu{title: title, exitTitle: "Exit"}
}

// Use appends middleware to the menu.
func (m *Menu) Use(mw ...Middleware) {
	m.middleware = append(m.middleware, mw...)
}

// Handle registers handler under key.
func (m *Menu) Handle(key, title string, handler HandlerFunc) {
	m.entries = append(m.entries, &entry{key: key, title: title, handler: handler})
}

// Group registers a sub-menu under key and returns it.
func (m *Menu) Group(key, title string) *Menu {
	sub := &Menu{title: title, exitTitle: "Back", parent: m}
	m.entries = append(m.entries, &entry{key: key, title: title, sub: sub})
	return sub
}

// Run shows the menu until the user picks ExitKey or the input ends.
func (m *Menu) Run(ctx context.Context, c *Ctx) error {
	err := m.run(ctx, c)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) run(ctx context.Context, c *Ctx) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.render(c)

		choice, err := c.Prompt("Select an option: ")
		if err != nil {
			return err
		}
		if choice == ExitKey {
			return nil
		}
		e := m.lookup(choice)
		if e == nil {
			c.Printf("Invalid choice %q.\n", choice)
			continue
		}

		if e.sub != nil {
			if err := e.sub.run(ctx, c); err != nil {
				return err
			}
			continue
		}

		c.action = e.title
		err = m.wrap(e.handler)(c)
		c.action = ""
		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			c.Printf("Error: %v\n", err)
		}
	}
}

func (m *Menu) render(c *Ctx) {
	c.Println()
	c.Println(strings.Repeat("=", 50))
	c.Printf("  %s\n", m.title)
	c.Println(strings.Repeat("=", 50))
	for _, e := range m.entries {
		c.Printf("  %s. %s\n", e.key, e.title)
	}
	c.Printf("  %s. %s\n", ExitKey, m.exitTitle)
}

func (m *Menu) lookup(key string) *entry {
	for _, e := range m.entries {
		if e.key == key {
			return e
		}
	}
	return nil
}

// wrap applies middleware from the root menu inwards.
func (m *Menu) wrap(h HandlerFunc) HandlerFunc {
	var chain []Middleware
	for menu := m; menu != nil; menu = menu.parent {
		chain = append(append([]Middleware{}, menu.middleware...), chain...)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}
