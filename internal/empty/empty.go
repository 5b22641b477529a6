package empty

import (
	"sync"
)

type Chan = chan struct{}

type ChanReadonly = <-chan struct{}

// DoNotCopy may be added to structs which must not be copied
// after the first use.
//
// Warning by `go vet` on copy.
type DoNotCopy [0]sync.Mutex
