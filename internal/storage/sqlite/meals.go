package sqlite

import (
	"mealweek/internal/models"
)

func (s *Store) InsertMeal(name string) (int64, error) {
	res, err := s.db.Exec("INSERT INTO meals (name) VALUES (?)", name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetMeal(id int64) (models.Meal, error) {
	var m models.Meal
	err := s.db.QueryRow("SELECT id, name FROM meals WHERE id = ?", id).Scan(&m.ID, &m.Name)
	if err != nil {
		return models.Meal{}, err
	}
	return m, nil
}

func (s *Store) GetAllMeals() ([]models.Meal, error) {
	rows, err := s.db.Query("SELECT id, name FROM meals ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

func (s *Store) DeleteMeal(id int64) error {
	// Scheduled assignments referencing the meal go with it via the cascade.
	_, err := s.db.Exec("DELETE FROM meals WHERE id = ?", id)
	return err
}
