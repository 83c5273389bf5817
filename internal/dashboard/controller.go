package dashboard

import (
	"log"
	"sync"
)

type Tab string

const (
	TabOverview   Tab = "overview"
	TabReports    Tab = "reports"
	TabPosts      Tab = "posts"
	TabCategories Tab = "categories"
	TabUsers      Tab = "users"
)

// Collection names one fetchable panel of dashboard state.
type Collection string

const (
	ColReports          Collection = "reports"
	ColPosts            Collection = "posts"
	ColCategories       Collection = "categories"
	ColUsers            Collection = "users"
	ColReportedComments Collection = "reportedComments"
)

// prefetch declares, per tab, every collection that tab renders. The
// Posts tab needs Categories for the category selector in its edit
// dialog, so the dependency is declared here instead of being an ad
// hoc side fetch.
var prefetch = map[Tab][]Collection{
	TabOverview:   {ColReports, ColPosts, ColCategories, ColUsers, ColReportedComments},
	TabReports:    {ColReports, ColReportedComments},
	TabPosts:      {ColPosts, ColCategories},
	TabCategories: {ColCategories},
	TabUsers:      {ColUsers},
}

type DialogType string

const (
	DialogNone     DialogType = ""
	DialogPost     DialogType = "post"
	DialogCategory DialogType = "category"
	DialogUser     DialogType = "user"
)

// FormData carries the dialog's fields; which ones matter depends on
// the dialog type. A zero ID means create, otherwise edit.
type FormData struct {
	ID          uint
	Title       string
	Content     string
	CategoryID  uint
	Name        string
	Description string
	Email       string
	Password    string
	Avatar      string
	Role        string
}

// Dialog is the form state machine: closed -> open(type, prefill) ->
// submitting -> closed.
type Dialog struct {
	Open         bool
	Type         DialogType
	Form         FormData
	ImagePreview string // data URI side channel, set independently of the form
	Submitting   bool
}

// Controller drives the admin dashboard: it owns the fetched
// collections, the active tab and the dialog, and serializes state
// changes behind one mutex. Every fetch is stamped with the epoch of
// its collection at launch; a completion whose epoch is stale is
// discarded, so a slow response from a previous tab can never
// overwrite fresher state.
type Controller struct {
	client *Client

	mu     sync.Mutex
	epochs map[Collection]uint64

	ActiveTab        Tab
	ReportFilter     string // "", "pending" or "resolved"
	Reports          []Report
	Posts            []Post
	Categories       []Category
	Users            []User
	ReportedComments []ReportedComment
	Errors           map[Collection]string
	Dialog           Dialog
}

func NewController(client *Client) *Controller {
	return &Controller{
		client:    client,
		epochs:    make(map[Collection]uint64),
		ActiveTab: TabOverview,
		Errors:    make(map[Collection]string),
	}
}

// nextEpoch invalidates every in-flight fetch of col and returns the
// token for the new one.
func (ctl *Controller) nextEpoch(col Collection) uint64 {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.epochs[col]++
	return ctl.epochs[col]
}

// current reports whether a fetch started at epoch is still the
// newest one for col.
func (ctl *Controller) current(col Collection, epoch uint64) bool {
	return ctl.epochs[col] == epoch
}

// fetch runs one collection fetch and applies the result only if no
// newer fetch of the same collection was started meanwhile.
func (ctl *Controller) fetch(col Collection, epoch uint64) {
	var (
		reports    []Report
		posts      []Post
		categories []Category
		users      []User
		reported   []ReportedComment
		err        error
	)

	ctl.mu.Lock()
	filter := ctl.ReportFilter
	ctl.mu.Unlock()

	switch col {
	case ColReports:
		if filter == "" {
			reports, err = ctl.client.GetReports()
		} else {
			reports, err = ctl.client.GetReportsByStatus(filter)
		}
	case ColPosts:
		posts, err = ctl.client.GetPosts()
	case ColCategories:
		categories, err = ctl.client.GetCategories()
	case ColUsers:
		users, err = ctl.client.GetUsers()
	case ColReportedComments:
		reported, err = ctl.client.GetReportedComments()
	}

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if !ctl.current(col, epoch) {
		return // a newer fetch owns this collection now
	}

	if err != nil {
		// Panels degrade independently; remember the failure and keep
		// whatever data the other panels have.
		log.Printf("dashboard: fetch %s: %v", col, err)
		ctl.Errors[col] = "Failed to fetch data"
		return
	}
	delete(ctl.Errors, col)

	switch col {
	case ColReports:
		ctl.Reports = reports
	case ColPosts:
		ctl.Posts = posts
	case ColCategories:
		ctl.Categories = categories
	case ColUsers:
		ctl.Users = users
	case ColReportedComments:
		ctl.ReportedComments = reported
	}
}

// refresh fans out one fetch per collection and waits for them all to
// settle. A failing panel never blocks the others.
func (ctl *Controller) refresh(cols ...Collection) {
	var wg sync.WaitGroup
	for _, col := range cols {
		epoch := ctl.nextEpoch(col)
		wg.Add(1)
		go func(col Collection, epoch uint64) {
			defer wg.Done()
			ctl.fetch(col, epoch)
		}(col, epoch)
	}
	wg.Wait()
}

// Bootstrap loads every collection the overview renders.
func (ctl *Controller) Bootstrap() {
	ctl.refresh(prefetch[TabOverview]...)
}

// SelectTab switches the active tab and re-fetches exactly the
// collections that tab declares.
func (ctl *Controller) SelectTab(tab Tab) {
	ctl.mu.Lock()
	ctl.ActiveTab = tab
	ctl.mu.Unlock()

	ctl.refresh(prefetch[tab]...)
}

// SetReportFilter narrows the Reports panel to one status and
// re-fetches it.
func (ctl *Controller) SetReportFilter(status string) {
	ctl.mu.Lock()
	ctl.ReportFilter = status
	ctl.mu.Unlock()

	ctl.refresh(ColReports)
}

// refreshActive re-fetches whatever the current tab shows, the
// post-mutation pattern everywhere below.
func (ctl *Controller) refreshActive() {
	ctl.mu.Lock()
	tab := ctl.ActiveTab
	ctl.mu.Unlock()

	ctl.refresh(prefetch[tab]...)
}

// OpenDialog opens the create/edit dialog. A nil prefill means
// create: the form resets to empty defaults.
func (ctl *Controller) OpenDialog(dtype DialogType, prefill *FormData) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()

	form := FormData{}
	if prefill != nil {
		form = *prefill
	}
	ctl.Dialog = Dialog{Open: true, Type: dtype, Form: form}
}

func (ctl *Controller) CloseDialog() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.Dialog = Dialog{}
}

// Submit dispatches the open dialog to the matching create/update
// call, then re-fetches the active tab's collections and closes the
// dialog. The dialog stays open on failure so the user can retry.
func (ctl *Controller) Submit() error {
	ctl.mu.Lock()
	if !ctl.Dialog.Open || ctl.Dialog.Submitting {
		ctl.mu.Unlock()
		return nil
	}
	ctl.Dialog.Submitting = true
	dtype := ctl.Dialog.Type
	form := ctl.Dialog.Form
	image := ctl.Dialog.ImagePreview
	ctl.mu.Unlock()

	var err error
	switch dtype {
	case DialogPost:
		pf := PostForm{Title: form.Title, Content: form.Content, CategoryID: form.CategoryID, Image: image}
		if form.ID == 0 {
			_, err = ctl.client.CreatePost(pf)
		} else {
			_, err = ctl.client.UpdatePost(form.ID, pf)
		}
	case DialogCategory:
		cf := CategoryForm{Name: form.Name, Description: form.Description}
		if form.ID == 0 {
			_, err = ctl.client.CreateCategory(cf)
		} else {
			_, err = ctl.client.UpdateCategory(form.ID, cf)
		}
	case DialogUser:
		uf := UserForm{Name: form.Name, Email: form.Email, Password: form.Password, Avatar: form.Avatar, Role: form.Role}
		if form.ID == 0 {
			_, err = ctl.client.CreateUser(uf)
		} else {
			_, err = ctl.client.UpdateUser(form.ID, uf)
		}
	}

	if err != nil {
		ctl.mu.Lock()
		ctl.Dialog.Submitting = false
		ctl.mu.Unlock()
		return err
	}

	ctl.CloseDialog()
	ctl.refreshActive()
	return nil
}

// Delete removes one entity and re-fetches the active tab.
func (ctl *Controller) Delete(dtype DialogType, id uint) error {
	var err error
	switch dtype {
	case DialogPost:
		err = ctl.client.DeletePost(id)
	case DialogCategory:
		err = ctl.client.DeleteCategory(id)
	case DialogUser:
		err = ctl.client.DeleteUser(id)
	}
	if err != nil {
		return err
	}
	ctl.refreshActive()
	return nil
}

// ResolveReportedComment applies a moderation action (delete or
// ignore) and re-fetches the reported-comments list in full; no
// optimistic update.
func (ctl *Controller) ResolveReportedComment(commentID uint, action string) error {
	if err := ctl.client.HandleReportedComment(commentID, action); err != nil {
		return err
	}
	ctl.refresh(ColReportedComments)
	return nil
}
