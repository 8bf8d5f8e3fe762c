package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// MaxGoals is the number of fitness goals a profile may hold at once.
const MaxGoals = 3

// FitnessGoals lists the goals a user can pick on the profile page.
var FitnessGoals = []string{
	"Lose Weight",
	"Build Muscle",
	"Improve Endurance",
	"Increase Flexibility",
	"Stay Active",
	"Reduce Stress",
}

func IsFitnessGoal(goal string) bool {
	for _, g := range FitnessGoals {
		if g == goal {
			return true
		}
	}
	return false
}

type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderOther     Gender = "other"
	GenderPreferNot Gender = "prefer-not"
)

type Profile struct {
	UserID       string    `json:"uid"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Bio          string    `json:"bio"`
	Age          *int      `json:"age"`
	WeightKg     *float64  `json:"weight"`
	HeightCm     *float64  `json:"height"`
	Gender       *Gender   `json:"gender"`
	Goals        []string  `json:"goals"`
	ProfilePhoto *string   `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProfile returns the blank profile created alongside a new account.
func NewProfile(userID, email, fullName string) *Profile {
	return &Profile{
		UserID:   userID,
		Email:    email,
		FullName: fullName,
		Goals:    []string{},
	}
}
