package interner

import "github.com/orizon-lang/hirstore/internal/hirtype"

// TypeAliasInfo is spec.md §3's per-TypeAliasId record: a name, its
// declared generics, and the type it resolves to — Error until
// SetTypeAlias installs the real thing.
type TypeAliasInfo struct {
	Name     string
	Generics []*TypeVariable
	Type     Type
}

// PushTypeAlias appends a placeholder alias (aliased type Error) and
// returns its densely-assigned id.
func (s *Store) PushTypeAlias(name string) TypeAliasID {
	id := TypeAliasID(len(s.aliases))

	s.aliases = append(s.aliases, TypeAliasInfo{
		Name: name,
		Type: hirtype.Error{},
	})

	return id
}

// SetTypeAlias installs the resolved type and generics for a
// previously-pushed alias.
func (s *Store) SetTypeAlias(id TypeAliasID, generics []*TypeVariable, typ Type) {
	alias := s.TypeAlias(id)
	alias.Generics = generics
	alias.Type = typ
	s.aliases[id] = alias
}

// TypeAlias fetches the alias record at id.
func (s *Store) TypeAlias(id TypeAliasID) TypeAliasInfo {
	return s.aliases[id]
}
