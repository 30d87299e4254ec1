package ui

import (
	"slices"
	"strings"
)

// ClassList is an ordered set of style classes.
type ClassList struct {
	classes []string
}

// NewClassList returns a list holding classes, duplicates dropped.
func NewClassList(classes ...string) *ClassList {
	c := &ClassList{}
	for _, class := range classes {
		c.AddClass(class)
	}
	return c
}

func (c *ClassList) AddClass(class string) {
	if class == "" || c.Contains(class) {
		return
	}
	c.classes = append(c.classes, class)
}

func (c *ClassList) RemoveClass(class string) {
	c.classes = slices.DeleteFunc(c.classes, func(s string) bool { return s == class })
}

func (c *ClassList) Contains(class string) bool {
	return slices.Contains(c.classes, class)
}

// String joins the classes with spaces, like a class attribute.
func (c *ClassList) String() string {
	return strings.Join(c.classes, " ")
}
