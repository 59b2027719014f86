package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredSchemasAreValid(t *testing.T) {
	for name, s := range Schemas {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, s.Validate())
			assert.Equal(t, name, s.Element)
		})
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		wantErr error
	}{
		{
			name: "missing identity field",
			schema: &Schema{
				Element: "broken",
				Table:   "broken",
				Fields: []Field{
					{Name: "label", Type: TypeVarchar, NotNull: Required},
				},
			},
			wantErr: ErrNoIdentityField,
		},
		{
			name: "two identity fields",
			schema: &Schema{
				Element: "broken",
				Table:   "broken",
				Fields: []Field{
					{Name: "rowid", Type: TypeInteger, Role: RoleIdentity},
					{Name: "rowid2", Type: TypeInteger, Role: RoleIdentity},
				},
			},
			wantErr: ErrNoIdentityField,
		},
		{
			name: "reference to unknown element",
			schema: &Schema{
				Element: "broken",
				Table:   "broken",
				Fields: []Field{
					{Name: "rowid", Type: TypeInteger, Role: RoleIdentity},
					{Name: "fk_ghost", Type: TypeReference, Ref: "ghost"},
				},
			},
			wantErr: ErrUnknownReferenceTarget,
		},
		{
			name: "provisional default on a non-ref field",
			schema: &Schema{
				Element: "broken",
				Table:   "broken",
				Fields: []Field{
					{Name: "rowid", Type: TypeInteger, Role: RoleIdentity},
					{Name: "label", Type: TypeVarchar, Default: DefaultProvisional, Role: RoleLabel},
				},
			},
			wantErr: ErrProvisionalNotRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSchemaLookups(t *testing.T) {
	s := Schemas[ElementProperty]

	assert.Equal(t, "rowid", s.Identity().Name)

	ref, ok := s.ByRole(RoleRef)
	require.True(t, ok)
	assert.Equal(t, "ref", ref.Name)
	assert.Equal(t, DefaultProvisional, ref.Default)

	owner, ok := s.ByName("fk_owner")
	require.True(t, ok)
	assert.True(t, owner.IsRef())
	assert.Equal(t, ElementOwner, owner.Ref)

	_, ok = s.ByName("no_such_column")
	assert.False(t, ok)

	assert.True(t, s.HasLines())
	assert.False(t, Schemas[ElementPayment].HasLines())
}

func TestDictFieldIsRef(t *testing.T) {
	s := Schemas[ElementProperty]
	country, ok := s.ByName("country_id")
	require.True(t, ok)
	assert.True(t, country.IsRef(), "dictionary fields coerce sentinels to NULL like references")
}
