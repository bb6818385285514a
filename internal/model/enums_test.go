package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumsRoundTripExactly(t *testing.T) {
	for _, role := range Roles() {
		raw, err := json.Marshal(role)
		require.NoError(t, err)

		var decoded Role
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, role, decoded)
	}
	for _, status := range Statuses() {
		raw, err := json.Marshal(status)
		require.NoError(t, err)

		var decoded Status
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, status, decoded)
	}
	for _, spec := range Specializations() {
		raw, err := json.Marshal(spec)
		require.NoError(t, err)

		var decoded Specialization
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, spec, decoded)
	}
}

func TestEnumsRejectUnknownValues(t *testing.T) {
	var role Role
	assert.Error(t, json.Unmarshal([]byte(`"ROOT"`), &role))
	// case-sensitive on the wire
	assert.Error(t, json.Unmarshal([]byte(`"admin"`), &role))

	var status Status
	assert.Error(t, json.Unmarshal([]byte(`"DISABLED"`), &status))

	var spec Specialization
	assert.Error(t, json.Unmarshal([]byte(`"PODIATRIST"`), &spec))
}

func TestSpecializationCount(t *testing.T) {
	assert.Len(t, Specializations(), 14)
}

func TestUserDecodeRejectsUnknownStatus(t *testing.T) {
	raw := []byte(`{"id":1,"firstName":"A","lastName":"B","email":"a@b.c","username":"ab","role":"ADMIN","status":"BANNED","createdAt":"2026-01-02T03:04:05Z"}`)
	var u User
	assert.Error(t, json.Unmarshal(raw, &u))
}
