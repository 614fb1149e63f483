package services

import (
	"context"
	"errors"
	"testing"

	"schoolconnect/internal/core/domain"
	"schoolconnect/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.schools.Create(ctx, &SchoolInput{
		Name:       "ZPHS Amalapuram",
		MandalID:   "mandal-amalapuram",
		Facilities: []string{"Library", "Lab"},
	})
	require.NoError(t, err)

	got, err := f.schools.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ZPHS Amalapuram", got.Name)
	assert.Equal(t, []string{"Library", "Lab"}, got.Facilities)
}

func TestSchoolCreateRequiresMandal(t *testing.T) {
	f := newFixture(t)

	_, err := f.schools.Create(context.Background(), &SchoolInput{Name: "No Mandal"})
	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "mandal_id")
}

func TestSchoolBlankNameRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.schools.Create(ctx, &SchoolInput{Name: "   ", MandalID: "mandal-amalapuram"})
	var vErr *validation.Error
	require.True(t, errors.As(err, &vErr), "got %v", err)
	assert.Contains(t, vErr.Fields, "name")

	created, err := f.schools.Create(ctx, &SchoolInput{Name: "  ZPHS Razole ", MandalID: "mandal-amalapuram"})
	require.NoError(t, err)
	assert.Equal(t, "ZPHS Razole", created.Name)

	_, err = f.schools.Replace(ctx, created.ID, &SchoolInput{Name: "\t", MandalID: "mandal-amalapuram"})
	require.True(t, errors.As(err, &vErr), "got %v", err)
	assert.Contains(t, vErr.Fields, "name")
}

func TestSchoolGetMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.schools.Get(context.Background(), "school-404")
	assert.ErrorIs(t, err, domain.ErrSchoolNotFound)
}

func TestSchoolListSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, in := range []SchoolInput{
		{Name: "ZPHS Amalapuram", MandalID: "m1"},
		{Name: "ZPHS Ravulapalem", MandalID: "m2"},
		{Name: "Govt School Razole", MandalID: "m1"},
	} {
		in := in
		_, err := f.schools.Create(ctx, &in)
		require.NoError(t, err)
	}

	items, total, err := f.schools.List(ctx, SchoolFilter{Search: "zphs"}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	items, total, err = f.schools.List(ctx, SchoolFilter{MandalID: "m1", Search: "ZPHS"}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "ZPHS Amalapuram", items[0].Name)

	items, total, err = f.schools.List(ctx, SchoolFilter{MandalID: "nowhere"}, firstPage)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSchoolReplace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	note := "Welcome"
	created, err := f.schools.Create(ctx, &SchoolInput{Name: "Old", MandalID: "m1", HMNote: &note})
	require.NoError(t, err)

	updated, err := f.schools.Replace(ctx, created.ID, &SchoolInput{Name: "New", MandalID: "m2"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got, err := f.schools.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "m2", got.MandalID)
	assert.Nil(t, got.HMNote)

	_, err = f.schools.Replace(ctx, "missing", &SchoolInput{Name: "X", MandalID: "m1"})
	assert.ErrorIs(t, err, domain.ErrSchoolNotFound)
}
