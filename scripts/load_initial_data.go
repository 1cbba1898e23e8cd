package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shift-planner-backend/internal/config"
	"shift-planner-backend/internal/database"
	"shift-planner-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type AccountData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type EmployeeData struct {
	AccountEmail string   `yaml:"account_email"`
	Name         string   `yaml:"name"`
	Roles        []string `yaml:"roles"`
	Rate         float64  `yaml:"rate"`
	Gender       string   `yaml:"gender,omitempty"`
}

type ShiftTemplateData struct {
	AccountEmail   string   `yaml:"account_email"`
	Label          string   `yaml:"label"`
	StartTime      string   `yaml:"start_time"`
	EndTime        string   `yaml:"end_time"`
	Weekdays       []string `yaml:"weekdays"`
	Roles          []string `yaml:"roles"`
	FullDay        bool     `yaml:"full_day"`
	SplitHeadcount *int     `yaml:"split_headcount,omitempty"`
	SplitHour      *int     `yaml:"split_hour,omitempty"`
}

type SettingsData struct {
	AccountEmail    string                 `yaml:"account_email"`
	MonthlyHours    int                    `yaml:"monthly_hours"`
	Location        string                 `yaml:"location"`
	StaffingTargets models.StaffingTargets `yaml:"staffing_targets,omitempty"`
	FullDayTargets  models.FullDayTargets  `yaml:"full_day_targets,omitempty"`
}

// File structures
type AccountsFile struct {
	Accounts []AccountData `yaml:"accounts"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type ShiftTemplatesFile struct {
	ShiftTemplates []ShiftTemplateData `yaml:"shift_templates"`
}

type SettingsFile struct {
	Settings []SettingsData `yaml:"settings"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
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
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	accounts, err := loadAccounts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	employees, err := loadEmployees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	templates, err := loadShiftTemplates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shift templates: %w", err)
	}

	settings, err := loadSettings(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Create accounts first, keyed by email for foreign key resolution
	accountMap := make(map[string]*models.Account)
	accountCreated := 0
	for _, accountData := range accounts {
		account, created, err := createAccount(db, accountData)
		if err != nil {
			return fmt.Errorf("failed to create account %s: %w", accountData.Email, err)
		}
		accountMap[accountData.Email] = account
		if created {
			accountCreated++
		}
	}
	log.Printf("📋 Accounts: %d created, %d total", accountCreated, len(accounts))

	employeeCreated := 0
	for _, employeeData := range employees {
		_, created, err := createEmployee(db, employeeData, accountMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create employee %s: %v", employeeData.Name, err)
			continue // Continue with other employees
		}
		if created {
			employeeCreated++
		}
	}
	log.Printf("📋 Employees: %d created, %d total", employeeCreated, len(employees))

	templateCreated := 0
	for _, templateData := range templates {
		_, created, err := createShiftTemplate(db, templateData, accountMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create shift template %s: %v", templateData.Label, err)
			continue // Continue with other templates
		}
		if created {
			templateCreated++
		}
	}
	log.Printf("📋 Shift templates: %d created, %d total", templateCreated, len(templates))

	settingsCreated := 0
	for _, settingsData := range settings {
		created, err := createSettings(db, settingsData, accountMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create settings for %s: %v", settingsData.AccountEmail, err)
			continue
		}
		if created {
			settingsCreated++
		}
	}
	log.Printf("📋 Account settings: %d created, %d total", settingsCreated, len(settings))

	return nil
}

func loadAccounts(dataDir string) ([]AccountData, error) {
	var allAccounts []AccountData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "accounts") {
			var file AccountsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAccounts = append(allAccounts, file.Accounts...)
		}
		return nil
	})

	return allAccounts, err
}

func loadEmployees(dataDir string) ([]EmployeeData, error) {
	var allEmployees []EmployeeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "employees") {
			var file EmployeesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEmployees = append(allEmployees, file.Employees...)
		}
		return nil
	})

	return allEmployees, err
}

func loadShiftTemplates(dataDir string) ([]ShiftTemplateData, error) {
	var allTemplates []ShiftTemplateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shift_templates") {
			var file ShiftTemplatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTemplates = append(allTemplates, file.ShiftTemplates...)
		}
		return nil
	})

	return allTemplates, err
}

func loadSettings(dataDir string) ([]SettingsData, error) {
	var allSettings []SettingsData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "settings") {
			var file SettingsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSettings = append(allSettings, file.Settings...)
		}
		return nil
	})

	return allSettings, err
}

func createAccount(db *gorm.DB, accountData AccountData) (*models.Account, bool, error) {
	var account models.Account
	if err := db.Where("email = ?", accountData.Email).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			account = models.Account{
				Name:  accountData.Name,
				Email: accountData.Email,
			}

			if err := db.Create(&account).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create account: %w", err)
			}
			return &account, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query account: %w", err)
		}
	}

	return &account, false, nil // created = false (existing)
}

func createEmployee(db *gorm.DB, employeeData EmployeeData, accountMap map[string]*models.Account) (*models.Employee, bool, error) {
	account := accountMap[employeeData.AccountEmail]
	if account == nil {
		return nil, false, fmt.Errorf("account %s not found for employee %s", employeeData.AccountEmail, employeeData.Name)
	}

	var employee models.Employee
	if err := db.Where("name = ? AND account_id = ?", employeeData.Name, account.ID).First(&employee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			rate := employeeData.Rate
			if rate == 0 {
				rate = 1.0
			}

			employee = models.Employee{
				AccountID: account.ID,
				Name:      employeeData.Name,
				Roles:     models.StringList(employeeData.Roles),
				Rate:      rate,
				Gender:    employeeData.Gender,
			}

			if err := db.Create(&employee).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create employee: %w", err)
			}
			return &employee, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query employee: %w", err)
		}
	}

	return &employee, false, nil // created = false (existing)
}

func createShiftTemplate(db *gorm.DB, templateData ShiftTemplateData, accountMap map[string]*models.Account) (*models.ShiftTemplate, bool, error) {
	account := accountMap[templateData.AccountEmail]
	if account == nil {
		return nil, false, fmt.Errorf("account %s not found for template %s", templateData.AccountEmail, templateData.Label)
	}

	var template models.ShiftTemplate
	if err := db.Where("label = ? AND account_id = ?", templateData.Label, account.ID).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			template = models.ShiftTemplate{
				AccountID:      account.ID,
				Label:          templateData.Label,
				StartTime:      templateData.StartTime,
				EndTime:        templateData.EndTime,
				Weekdays:       models.StringList(templateData.Weekdays),
				Roles:          models.StringList(templateData.Roles),
				FullDay:        templateData.FullDay,
				SplitHeadcount: templateData.SplitHeadcount,
				SplitHour:      templateData.SplitHour,
			}

			if err := db.Create(&template).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create shift template: %w", err)
			}
			return &template, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query shift template: %w", err)
		}
	}

	return &template, false, nil // created = false (existing)
}

func createSettings(db *gorm.DB, settingsData SettingsData, accountMap map[string]*models.Account) (bool, error) {
	account := accountMap[settingsData.AccountEmail]
	if account == nil {
		return false, fmt.Errorf("account %s not found", settingsData.AccountEmail)
	}

	var existing models.AccountSettings
	if err := db.Where("account_id = ?", account.ID).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			monthlyHours := settingsData.MonthlyHours
			if monthlyHours == 0 {
				monthlyHours = models.DefaultMonthlyHours
			}
			location := settingsData.Location
			if location == "" {
				location = "hospital"
			}

			settings := models.AccountSettings{
				AccountID:       account.ID,
				MonthlyHours:    monthlyHours,
				Location:        location,
				StaffingTargets: settingsData.StaffingTargets,
				FullDayTargets:  settingsData.FullDayTargets,
			}

			if err := db.Create(&settings).Error; err != nil {
				return false, fmt.Errorf("failed to create settings: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query settings: %w", err)
	}

	return false, nil // created = false (existing)
}
