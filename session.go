// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cybrota/avlscope/avl"
)

var ErrUnknownKeyKind = errors.New("unknown key kind")

// Session is a tree whose key type is fixed when the session is created.
// Keys cross the boundary as strings so the CLI never deals with generics.
type Session interface {
	Kind() string
	Insert(token string) (bool, error)
	Delete(token string) (bool, error)
	Contains(token string) (bool, error)
	Keys() []string
	Min() (string, bool)
	Max() (string, bool)
	Len() int
	Height() int
	Verify() error
	Clear()
	Render(opts avl.RenderOptions) string
	Fingerprint() uint64
}

// KeyKind pairs a key type name with a session constructor.
type KeyKind struct {
	Name        string
	Description string
	newSession  func() Session
}

var keyKinds = []KeyKind{
	{
		Name:        "int",
		Description: "signed integers (base 10)",
		newSession:  func() Session { return newSession("int", strconv.Atoi) },
	},
	{
		Name:        "float",
		Description: "floating point numbers, NaN rejected",
		newSession:  func() Session { return newSession("float", parseFloatKey) },
	},
	{
		Name:        "string",
		Description: "strings, ordered byte-wise",
		newSession: func() Session {
			return newSession("string", func(s string) (string, error) { return s, nil })
		},
	},
}

// KeyKinds lists the registered key kinds in preference order.
func KeyKinds() []KeyKind {
	return keyKinds
}

func keyKindNames() string {
	names := make([]string, 0, len(keyKinds))
	for _, k := range keyKinds {
		names = append(names, k.Name)
	}
	return strings.Join(names, "|")
}

// NewSession creates an empty session for the named key kind.
func NewSession(kind string) (Session, error) {
	for _, k := range keyKinds {
		if k.Name == kind {
			return k.newSession(), nil
		}
	}
	return nil, fmt.Errorf("%w %q (want %s)", ErrUnknownKeyKind, kind, keyKindNames())
}

func parseFloatKey(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	// NaN has no place in a total order
	if math.IsNaN(f) {
		return 0, errors.New("NaN is not orderable")
	}
	return f, nil
}

type session[K cmp.Ordered] struct {
	kind  string
	tree  *avl.Tree[K]
	parse func(string) (K, error)
}

func newSession[K cmp.Ordered](kind string, parse func(string) (K, error)) *session[K] {
	return &session[K]{kind: kind, tree: avl.New[K](), parse: parse}
}

func (s *session[K]) Kind() string { return s.kind }

func (s *session[K]) key(token string) (K, error) {
	k, err := s.parse(token)
	if err != nil {
		return k, fmt.Errorf("invalid %s key %q: %v", s.kind, token, err)
	}
	return k, nil
}

func (s *session[K]) Insert(token string) (bool, error) {
	k, err := s.key(token)
	if err != nil {
		return false, err
	}
	return s.tree.Insert(k), nil
}

func (s *session[K]) Delete(token string) (bool, error) {
	k, err := s.key(token)
	if err != nil {
		return false, err
	}
	return s.tree.Delete(k), nil
}

func (s *session[K]) Contains(token string) (bool, error) {
	k, err := s.key(token)
	if err != nil {
		return false, err
	}
	return s.tree.Contains(k), nil
}

func (s *session[K]) Keys() []string {
	keys := s.tree.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprint(k)
	}
	return out
}

func (s *session[K]) Min() (string, bool) {
	k, ok := s.tree.Min()
	if !ok {
		return "", false
	}
	return fmt.Sprint(k), true
}

func (s *session[K]) Max() (string, bool) {
	k, ok := s.tree.Max()
	if !ok {
		return "", false
	}
	return fmt.Sprint(k), true
}

func (s *session[K]) Len() int      { return s.tree.Len() }
func (s *session[K]) Height() int   { return s.tree.Height() }
func (s *session[K]) Verify() error { return avl.Verify(s.tree.Root()) }
func (s *session[K]) Clear()        { s.tree.Clear() }

func (s *session[K]) Render(opts avl.RenderOptions) string {
	return avl.Render(s.tree.Root(), opts)
}

func (s *session[K]) Fingerprint() uint64 {
	return avl.Fingerprint(s.tree.Root())
}
