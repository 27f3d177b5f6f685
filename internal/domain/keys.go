package domain

import (
	"fmt"
	"strings"
)

// KeyKind tags the entity type encoded into a composite table key.
type KeyKind string

const (
	KindProduct KeyKind = "PRODUCT"
	KindCart    KeyKind = "CART"
	KindOrder   KeyKind = "ORDER"
	KindUser    KeyKind = "USER"
	KindBlog    KeyKind = "BLOG"
)

// Key is the typed form of the "KIND#id" composite keys stored in the table.
type Key struct {
	Kind KeyKind
	ID   string
}

func (k Key) Encode() string {
	return string(k.Kind) + "#" + k.ID
}

func ParseKey(s string) (Key, error) {
	kind, id, ok := strings.Cut(s, "#")
	if !ok || id == "" {
		return Key{}, fmt.Errorf("malformed key %q", s)
	}

	switch KeyKind(kind) {
	case KindProduct, KindCart, KindOrder, KindUser, KindBlog:
		return Key{Kind: KeyKind(kind), ID: id}, nil
	}
	return Key{}, fmt.Errorf("unknown key kind %q", kind)
}

func ProductKey(id string) Key { return Key{Kind: KindProduct, ID: id} }
func CartKey(id string) Key    { return Key{Kind: KindCart, ID: id} }
func OrderKey(id string) Key   { return Key{Kind: KindOrder, ID: id} }
func UserKey(id string) Key    { return Key{Kind: KindUser, ID: id} }
func BlogKey(slug string) Key  { return Key{Kind: KindBlog, ID: slug} }
