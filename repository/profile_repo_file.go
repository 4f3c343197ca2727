package repository

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"omnicassion/models"
)

// FileProfileRepo stores the single company profile as one JSON file.
type FileProfileRepo struct {
	Path string
}

func NewFileProfileRepo(dir string) *FileProfileRepo {
	return &FileProfileRepo{Path: filepath.Join(dir, "profile.json")}
}

func (r *FileProfileRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	if err := os.MkdirAll(filepath.Dir(r.Path), os.ModePerm); err != nil {
		return err
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.Path, data, 0644)
}

func (r *FileProfileRepo) GetProfile() (*models.CompanyProfile, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var profile models.CompanyProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("profile store: %s is unreadable: %v", r.Path, err)
		return nil, nil
	}
	return &profile, nil
}
