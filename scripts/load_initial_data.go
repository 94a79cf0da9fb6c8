package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crm-portal-backend/internal/config"
	"crm-portal-backend/internal/database"
	"crm-portal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SalesChannelData struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	IsActive    *bool  `yaml:"is_active,omitempty"`
}

type BusinessUnitData struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	ParentCode  string `yaml:"parent_code,omitempty"`
	CostCenter  string `yaml:"cost_center,omitempty"`
}

type MarketingOfficeData struct {
	Code             string `yaml:"code"`
	Name             string `yaml:"name"`
	City             string `yaml:"city"`
	Country          string `yaml:"country"`
	Phone            string `yaml:"phone,omitempty"`
	BusinessUnitCode string `yaml:"business_unit_code,omitempty"`
}

type MarketingChannelData struct {
	Name        string  `yaml:"name"`
	Medium      string  `yaml:"medium"` // human-facing label, e.g. "Social Media"
	Description string  `yaml:"description,omitempty"`
	CostPerLead float64 `yaml:"cost_per_lead"`
	IsActive    *bool   `yaml:"is_active,omitempty"`
}

// File structures
type SalesChannelsFile struct {
	SalesChannels []SalesChannelData `yaml:"sales_channels"`
}

type BusinessUnitsFile struct {
	BusinessUnits []BusinessUnitData `yaml:"business_units"`
}

type MarketingOfficesFile struct {
	MarketingOffices []MarketingOfficeData `yaml:"marketing_offices"`
}

type MarketingChannelsFile struct {
	MarketingChannels []MarketingChannelData `yaml:"marketing_channels"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	units, err := loadBusinessUnits(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load business units: %w", err)
	}

	channels, err := loadSalesChannels(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load sales channels: %w", err)
	}

	offices, err := loadMarketingOffices(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load marketing offices: %w", err)
	}

	marketingChannels, err := loadMarketingChannels(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load marketing channels: %w", err)
	}

	// Business units first: roots before children so parent references resolve.
	unitCreated := 0
	for _, unitData := range sortUnitsByDepth(units) {
		created, err := createBusinessUnit(db, unitData)
		if err != nil {
			return fmt.Errorf("failed to create business unit %s: %w", unitData.Code, err)
		}
		if created {
			unitCreated++
		}
	}
	log.Printf("Business units: %d created, %d total", unitCreated, len(units))

	channelCreated := 0
	for _, channelData := range channels {
		created, err := createSalesChannel(db, channelData)
		if err != nil {
			return fmt.Errorf("failed to create sales channel %s: %w", channelData.Code, err)
		}
		if created {
			channelCreated++
		}
	}
	log.Printf("Sales channels: %d created, %d total", channelCreated, len(channels))

	officeCreated := 0
	for _, officeData := range offices {
		created, err := createMarketingOffice(db, officeData)
		if err != nil {
			log.Printf("Warning: failed to create marketing office %s: %v", officeData.Code, err)
			continue
		}
		if created {
			officeCreated++
		}
	}
	log.Printf("Marketing offices: %d created, %d total", officeCreated, len(offices))

	mcCreated := 0
	for _, mcData := range marketingChannels {
		created, err := createMarketingChannel(db, mcData)
		if err != nil {
			log.Printf("Warning: failed to create marketing channel %s: %v", mcData.Name, err)
			continue
		}
		if created {
			mcCreated++
		}
	}
	log.Printf("Marketing channels: %d created, %d total", mcCreated, len(marketingChannels))

	return nil
}

// sortUnitsByDepth orders units so that every parent precedes its children.
func sortUnitsByDepth(units []BusinessUnitData) []BusinessUnitData {
	byCode := make(map[string]BusinessUnitData, len(units))
	for _, u := range units {
		byCode[u.Code] = u
	}
	depth := func(u BusinessUnitData) int {
		d := 0
		for u.ParentCode != "" {
			parent, ok := byCode[u.ParentCode]
			if !ok || d > len(units) {
				break
			}
			u = parent
			d++
		}
		return d
	}
	sorted := make([]BusinessUnitData, len(units))
	copy(sorted, units)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && depth(sorted[j]) < depth(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

func loadSalesChannels(dataDir string) ([]SalesChannelData, error) {
	var all []SalesChannelData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "sales_channels") {
			var file SalesChannelsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.SalesChannels...)
		}
		return nil
	})

	return all, err
}

func loadBusinessUnits(dataDir string) ([]BusinessUnitData, error) {
	var all []BusinessUnitData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "business_units") {
			var file BusinessUnitsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.BusinessUnits...)
		}
		return nil
	})

	return all, err
}

func loadMarketingOffices(dataDir string) ([]MarketingOfficeData, error) {
	var all []MarketingOfficeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "marketing_offices") {
			var file MarketingOfficesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.MarketingOffices...)
		}
		return nil
	})

	return all, err
}

func loadMarketingChannels(dataDir string) ([]MarketingChannelData, error) {
	var all []MarketingChannelData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "marketing_channels") {
			var file MarketingChannelsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.MarketingChannels...)
		}
		return nil
	})

	return all, err
}

func createSalesChannel(db *gorm.DB, data SalesChannelData) (bool, error) {
	code := strings.ToUpper(data.Code)

	var channel models.SalesChannel
	if err := db.Where("sales_channel_code = ?", code).First(&channel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			isActive := true
			if data.IsActive != nil {
				isActive = *data.IsActive
			}

			channel = models.SalesChannel{
				Code:        code,
				Name:        data.Name,
				Description: data.Description,
				IsActive:    isActive,
			}

			if err := db.Create(&channel).Error; err != nil {
				return false, fmt.Errorf("failed to create sales channel: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query sales channel: %w", err)
	}

	return false, nil // existing
}

func createBusinessUnit(db *gorm.DB, data BusinessUnitData) (bool, error) {
	code := strings.ToUpper(data.Code)

	var unit models.BusinessUnit
	if err := db.Where("business_unit_code = ?", code).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var parentCode *string
			if data.ParentCode != "" {
				pc := strings.ToUpper(data.ParentCode)
				parentCode = &pc
			}

			unit = models.BusinessUnit{
				Code:        code,
				Name:        data.Name,
				Description: data.Description,
				ParentCode:  parentCode,
				CostCenter:  data.CostCenter,
			}

			if err := db.Create(&unit).Error; err != nil {
				return false, fmt.Errorf("failed to create business unit: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query business unit: %w", err)
	}

	return false, nil // existing
}

func createMarketingOffice(db *gorm.DB, data MarketingOfficeData) (bool, error) {
	code := strings.ToUpper(data.Code)

	var office models.MarketingOffice
	if err := db.Where("marketing_office_code = ?", code).First(&office).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var buCode *string
			if data.BusinessUnitCode != "" {
				bc := strings.ToUpper(data.BusinessUnitCode)
				buCode = &bc
			}

			office = models.MarketingOffice{
				Code:             code,
				Name:             data.Name,
				City:             data.City,
				Country:          strings.ToUpper(data.Country),
				Phone:            data.Phone,
				BusinessUnitCode: buCode,
			}

			if err := db.Create(&office).Error; err != nil {
				return false, fmt.Errorf("failed to create marketing office: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query marketing office: %w", err)
	}

	return false, nil // existing
}

func createMarketingChannel(db *gorm.DB, data MarketingChannelData) (bool, error) {
	var channel models.MarketingChannel
	if err := db.Where("name = ?", data.Name).First(&channel).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			isActive := true
			if data.IsActive != nil {
				isActive = *data.IsActive
			}

			channel = models.MarketingChannel{
				Name:        data.Name,
				Medium:      models.ParseChannelMedium(data.Medium),
				Description: data.Description,
				CostPerLead: data.CostPerLead,
				IsActive:    isActive,
			}

			if err := db.Create(&channel).Error; err != nil {
				return false, fmt.Errorf("failed to create marketing channel: %w", err)
			}
			return true, nil
		}
		return false, fmt.Errorf("failed to query marketing channel: %w", err)
	}

	return false, nil // existing
}
