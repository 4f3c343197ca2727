package repository

import "omnicassion/models"

// ProfileRepository stores the single company profile document.
type ProfileRepository interface {
	SaveProfile(profile *models.CompanyProfile) error
	GetProfile() (*models.CompanyProfile, error)
}
