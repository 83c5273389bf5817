package services

import (
	"log"
	"sync"

	"inkwell/internal/db"
	"inkwell/internal/models"
)

// Panel is the per-collection result of a dashboard fetch. Panels are
// independently optional: one failure never blocks the others, so each
// carries its own success flag instead of the fan-out sharing one error.
type Panel struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// DashboardData is the bootstrap payload for the admin dashboard.
type DashboardData struct {
	Reports    Panel `json:"reports"`
	Posts      Panel `json:"posts"`
	Categories Panel `json:"categories"`
	Users      Panel `json:"users"`
}

type panelFetch struct {
	name  string
	fetch func() (interface{}, error)
	out   *Panel
}

// FetchDashboard fans out the four collection fetches concurrently and
// settles them all: every goroutine reports into its own Panel and the
// call returns once all four are done, whatever their outcomes.
func FetchDashboard() DashboardData {
	var data DashboardData

	fetches := []panelFetch{
		{"reports", fetchReports, &data.Reports},
		{"posts", fetchPosts, &data.Posts},
		{"categories", fetchCategories, &data.Categories},
		{"users", fetchUsers, &data.Users},
	}

	var wg sync.WaitGroup
	for i := range fetches {
		wg.Add(1)
		go func(f panelFetch) {
			defer wg.Done()
			result, err := f.fetch()
			if err != nil {
				log.Printf("dashboard: %s fetch failed: %v", f.name, err)
				*f.out = Panel{Success: false, Message: "Failed to fetch " + f.name}
				return
			}
			*f.out = Panel{Success: true, Data: result}
		}(fetches[i])
	}
	wg.Wait()

	return data
}

func fetchReports() (interface{}, error) {
	var reports []models.Report
	err := db.DB.Order("created_at DESC").Find(&reports).Error
	return reports, err
}

func fetchPosts() (interface{}, error) {
	var posts []models.Post
	err := db.DB.Preload("Author").Preload("Category").
		Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func fetchCategories() (interface{}, error) {
	var categories []models.Category
	err := db.DB.Order("id ASC").Find(&categories).Error
	return categories, err
}

func fetchUsers() (interface{}, error) {
	var users []models.User
	err := db.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}
