package fixtures

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nextassist/internal/domain"
)

// DemoPassword is what the seeded accounts are created with. Login does
// not verify it, but the hash is stored the same way registration
// stores one.
const DemoPassword = "demo123"

// Models lists every table the store migrates.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Project{},
		&domain.Task{},
		&domain.Comment{},
		&domain.DailyReport{},
		&domain.WorkExperience{},
		&domain.Skill{},
		&domain.AvailableSkill{},
		&domain.Course{},
		&domain.Balance{},
		&domain.AssistantCharge{},
		&domain.Transaction{},
		&domain.LearningModule{},
		&domain.Lesson{},
		&domain.Session{},
	}
}

// Load writes the whole demo dataset into the store. It assumes the
// schema exists and the tables are empty.
func Load(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := Users()
	for i := range users {
		users[i].PasswordHash = string(hash)
		if err := db.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	for _, p := range Projects() {
		p := p
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	for _, t := range Tasks() {
		t := t
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	for _, c := range Comments() {
		c := c
		if err := db.Create(&c).Error; err != nil {
			return err
		}
	}
	for _, r := range Reports() {
		r := r
		if err := db.Create(&r).Error; err != nil {
			return err
		}
	}
	for _, e := range Experiences() {
		e := e
		if err := db.Create(&e).Error; err != nil {
			return err
		}
	}
	for _, s := range Skills() {
		s := s
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	for _, s := range AvailableSkills() {
		s := s
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	for _, c := range Courses() {
		c := c
		if err := db.Create(&c).Error; err != nil {
			return err
		}
	}
	balance := Balance()
	if err := db.Create(&domain.Balance{
		ManagerID:      "2",
		Total:          balance.Total,
		NextChargeDate: balance.NextChargeDate,
	}).Error; err != nil {
		return err
	}
	for _, charge := range balance.AssistantCharges {
		charge := charge
		if err := db.Create(&charge).Error; err != nil {
			return err
		}
	}

	for _, t := range Transactions() {
		t := t
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	for _, m := range LearningModules() {
		m := m
		if err := db.Create(&m).Error; err != nil {
			return err
		}
	}

	return nil
}

// Empty reports whether the store has been seeded yet.
func Empty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
