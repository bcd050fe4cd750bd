package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	list := collect()

	names := make(map[string]bool, len(list))
	for _, a := range list {
		assert.False(t, names[a.Name], "duplicate analyzer %s", a.Name)
		names[a.Name] = true
	}

	for _, name := range []string{"errcheck", "bodyclose", "noexit", "nodefaultclient", "ST1000", "S1000", "SA1000", "copylocks"} {
		assert.True(t, names[name], "analyzer %s is missing", name)
	}
}
