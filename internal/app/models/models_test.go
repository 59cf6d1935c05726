package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsValid(), "expected %q to be valid", c)
	}

	assert.False(t, Category("Heating").IsValid())
	assert.False(t, Category("electrical").IsValid(), "category matching is case-sensitive")
	assert.False(t, Category("").IsValid())
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range Priorities() {
		assert.True(t, p.IsValid(), "expected %q to be valid", p)
	}

	assert.False(t, Priority("Urgent").IsValid())
	assert.False(t, Priority("").IsValid())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.True(t, Status("In Progress").IsValid())
	assert.False(t, Status("InProgress").IsValid())
	assert.False(t, Status("Closed").IsValid())
}

func TestUserSummary(t *testing.T) {
	block := "Block A"
	room := "101"
	u := &User{
		ID:           3,
		Name:         "Ada Student",
		Email:        "ada@example.com",
		PasswordHash: "hash",
		Role:         RoleStudent,
		Block:        &block,
		Room:         &room,
	}

	s := u.Summary()
	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, "Ada Student", s.Name)
	assert.Equal(t, "ada@example.com", s.Email)
	assert.Equal(t, &block, s.Block)
	assert.Equal(t, &room, s.Room)
}
