package keys

import (
	"bytes"
	"errors"
)

// ErrForeignKey reports a key that does not carry the list prefix.
var ErrForeignKey = errors.New("key without list prefix")

type Builder interface {
	Version() []byte
	Lists() []byte
	List(name string) []byte
	ListName(key string) (string, error)
}

type builder struct {
}

func (b builder) Version() []byte {
	return versionPrefix[:]
}

func (b builder) Lists() []byte {
	return listPrefix[:]
}

func (b builder) List(name string) []byte {
	return append(listPrefix[:], []byte(name)...)
}

func (b builder) ListName(key string) (string, error) {
	if !bytes.HasPrefix([]byte(key), listPrefix[:]) {
		return "", ErrForeignKey
	}

	return key[len(listPrefix):], nil
}

func NewBuilder() Builder {
	return &builder{}
}
