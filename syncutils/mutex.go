//go:build !deadlock

package syncutils

import (
	"sync"
)

type (
	Mutex   = sync.Mutex
	RWMutex = sync.RWMutex
)
