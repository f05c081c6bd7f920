package database

import (
	"fmt"
	"testing"

	"github.com/SB-fmayen/EduLink-sub000/app/models"
	"github.com/stretchr/testify/assert"
)

func TestCollectStudentIDs(t *testing.T) {
	enrollments := []*models.Enrollment{
		{StudentID: "s1"},
		{StudentID: "s2"},
		{StudentID: "s1"}, // duplicate
		{StudentID: ""},   // missing reference
		{StudentID: "s3"},
	}

	ids := collectStudentIDs(enrollments)
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids)
}

func TestCollectStudentIDsEmpty(t *testing.T) {
	assert.Empty(t, collectStudentIDs(nil))
	assert.Empty(t, collectStudentIDs([]*models.Enrollment{}))
}

func TestCapIDs(t *testing.T) {
	ids := make([]string, 45)
	for i := range ids {
		ids[i] = fmt.Sprintf("s%d", i)
	}

	capped := capIDs(ids)
	assert.Len(t, capped, profileBatchCap)
	assert.Equal(t, "s0", capped[0])
	assert.Equal(t, "s29", capped[profileBatchCap-1])

	// At or under the cap nothing is dropped
	assert.Len(t, capIDs(ids[:30]), 30)
	assert.Len(t, capIDs(ids[:5]), 5)
}

// An empty id list must not touch the database at all: the nil handle would
// panic on any query.
func TestResolveProfilesEmptySkipsLookup(t *testing.T) {
	profiles, err := ResolveProfiles(nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, profiles)

	profiles, err = ResolveProfiles(nil, []string{})
	assert.NoError(t, err)
	assert.Empty(t, profiles)
}
