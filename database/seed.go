package database

import (
	"fmt"
	"log"

	"api/models"

	"gorm.io/gorm"
)

// Populate seeds the fixed event data (judges, categories, contestants) if
// the tables are empty. Scores are never seeded; they only exist once judges
// submit them.
func Populate(db *gorm.DB) error {
	var countJudges, countCategories, countContestants int64
	db.Model(&models.Judge{}).Count(&countJudges)
	db.Model(&models.Category{}).Count(&countCategories)
	db.Model(&models.Contestant{}).Count(&countContestants)

	if countJudges == 0 {
		judges := seedJudges()
		if err := db.Create(&judges).Error; err != nil {
			return fmt.Errorf("failed to seed judges: %w", err)
		}
		log.Println("Judges seeded")
	}

	if countCategories == 0 {
		categories := seedCategories()
		if err := db.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		log.Println("Categories seeded")
	}

	if countContestants == 0 {
		contestants := seedContestants()
		if err := db.Create(&contestants).Error; err != nil {
			return fmt.Errorf("failed to seed contestants: %w", err)
		}
		log.Println("Contestants seeded")
	}

	return nil
}

// Reseed clears all four tables and reloads the fixed event data. This is
// the administrative fresh-start path; it removes every submitted score.
func Reseed(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Score{},
		&models.Contestant{},
		&models.Category{},
		&models.Judge{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return Populate(db)
}

func seedJudges() []models.Judge {
	return []models.Judge{
		{Name: "Judge 1", Pin: "1111"},
		{Name: "Judge 2", Pin: "2222"},
		{Name: "Judge 3", Pin: "3333"},
		{Name: "Judge 4", Pin: "4444"},
		{Name: "Judge 5", Pin: "5555"},
	}
}

func seedCategories() []models.Category {
	uniformCriteria := models.CriterionList{
		{Name: "Runway", MaxScore: 40},
		{Name: "Attire Presentation", MaxScore: 40},
		{Name: "Introduction", MaxScore: 10},
		{Name: "Overall Impression", MaxScore: 10},
	}
	sportsCriteria := models.CriterionList{
		{Name: "Runway & Athletic Movement", MaxScore: 40},
		{Name: "Sportswear Presentation", MaxScore: 40},
		{Name: "Concept Execution", MaxScore: 10},
		{Name: "Expression & Energy", MaxScore: 10},
	}
	glamCriteria := models.CriterionList{
		{Name: "Runway & Stage Performance", MaxScore: 40},
		{Name: "Attire Presentation", MaxScore: 40},
		{Name: "Advocacy", MaxScore: 10},
		{Name: "Overall impact", MaxScore: 10},
	}

	return []models.Category{
		{Name: "College Uniform - Male", Gender: "Male", Order: 1, Criteria: uniformCriteria},
		{Name: "College Uniform - Female", Gender: "Female", Order: 2, Criteria: uniformCriteria},
		{Name: "Sports Category - Male", Gender: "Male", Order: 3, Criteria: sportsCriteria},
		{Name: "Sports Category - Female", Gender: "Female", Order: 4, Criteria: sportsCriteria},
		{Name: "Glam & Suit Category - Male", Gender: "Male", Order: 5, Criteria: glamCriteria},
		{Name: "Glam & Suit Category - Female", Gender: "Female", Order: 6, Criteria: glamCriteria},
	}
}

func seedContestants() []models.Contestant {
	males := []string{
		"Gayapa, Eco",
		"Obanil, Mark Justine",
		"Gonzales, Lean",
		"Mendoza, Kurt Cedric A.",
		"Gracia, Richbon Divina",
		"Santuele, Redray Neil Anthony S.",
		"---", // slot 7 empty on the official sheet
		"Gavine, John Argo",
		"Gamueda, Zymier James A.",
		"Gonzales, Jedrick",
		"Rayos Del Sol, Marck Dredge",
		"Espelita, Joshua Roy",
	}
	females := []string{
		"Magadja, Aesha",
		"Libay, Sheilla Mae",
		"Jaromay, Princess Janna",
		"Fajardo, Alyza Angela C.",
		"Cadangan, Reychelle Ann",
		"Reyes, Jade Anne H.",
		"Recto, Ellouise Anya Joy",
		"Baleña, Daniella Antonnette",
		"Guliban, Lindsay Marie F.",
		"---", // slot 10 empty on the official sheet
		"Futol, Rojan Nathalie E.",
		"Mabunga, Danielei",
	}

	var contestants []models.Contestant
	for i, name := range males {
		number := i + 1
		partner := number // pairs with Female #N
		contestants = append(contestants, models.Contestant{
			Number: number, Name: name, Gender: "Male", PartnerNumber: &partner,
		})
	}
	for i, name := range females {
		number := i + 1
		partner := number // pairs with Male #N
		contestants = append(contestants, models.Contestant{
			Number: number, Name: name, Gender: "Female", PartnerNumber: &partner,
		})
	}
	return contestants
}
