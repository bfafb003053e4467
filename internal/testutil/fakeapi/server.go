// Package fakeapi is an in-memory implementation of the todo REST API for tests.
// It follows the server's contract: the first signup becomes admin, members only
// see tasks assigned to them, and only admins may create tasks or list comments.
package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/todolink/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Route keys used with SetHook and Count
const (
	RouteSignup       = "POST /signup"
	RouteLogin        = "POST /login"
	RouteListUsers    = "GET /users"
	RouteListTasks    = "GET /todos"
	RouteCreateTask   = "POST /todos"
	RouteUpdateTask   = "PUT /todos/:id"
	RouteDeleteTask   = "DELETE /todos/:id"
	RouteListComments = "GET /todos/:id/comments"
	RoutePostComment  = "POST /todos/:id/comments"
)

// Request is one recorded call
type Request struct {
	Route  string
	Path   string
	UserID string
}

// Hook runs before a route's handler. Returning true means the hook wrote the response.
type Hook func(c *gin.Context) bool

type user struct {
	models.User
	hash []byte
}

// Server is the fake API
type Server struct {
	srv *httptest.Server

	mu         sync.Mutex
	users      map[int]*user
	tasks      map[int]*models.Task
	comments   map[int][]*models.Comment
	nextUserID int
	nextTaskID int
	hooks      map[string]Hook
	requests   []Request
}

// New starts a fake API server that is closed when the test ends
func New(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		users:      make(map[int]*user),
		tasks:      make(map[int]*models.Task),
		comments:   make(map[int][]*models.Comment),
		nextUserID: 1,
		nextTaskID: 1,
		hooks:      make(map[string]Hook),
	}

	router := gin.New()
	router.Use(s.record)

	router.POST("/signup", s.signup)
	router.POST("/login", s.login)

	authed := router.Group("/", s.requireUser)
	authed.GET("/users", s.listUsers)
	authed.GET("/todos", s.listTasks)
	authed.POST("/todos", s.createTask)
	authed.PUT("/todos/:id", s.updateTask)
	authed.DELETE("/todos/:id", s.deleteTask)
	authed.GET("/todos/:id/comments", s.listComments)
	authed.POST("/todos/:id/comments", s.postComment)

	s.srv = httptest.NewServer(router)
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the server's base URL
func (s *Server) URL() string {
	return s.srv.URL
}

// Close shuts the server down early, e.g. to simulate an unreachable API
func (s *Server) Close() {
	s.srv.Close()
}

// SetHook installs a hook for route, replacing any previous one. A nil hook removes it.
func (s *Server) SetHook(route string, hook Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hook == nil {
		delete(s.hooks, route)
		return
	}
	s.hooks[route] = hook
}

// AddUser creates a user directly and returns its ID
func (s *Server) AddUser(username, password string, role models.Role) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(username, password, role)
}

// AddTask creates a task directly and returns its ID. assignedTo 0 means unassigned.
func (s *Server) AddTask(title string, assignedTo int, completed bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.newTaskLocked(title, assignedTo)
	task.Completed = completed
	return task.ID
}

// AddComment attaches a comment directly
func (s *Server) AddComment(taskID int, username, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[taskID] = append(s.comments[taskID], &models.Comment{TaskID: taskID, Username: username, Content: content})
}

// Tasks returns a copy of all tasks ordered by ID
func (s *Server) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, 0, len(s.tasks))
	for _, id := range s.sortedTaskIDsLocked() {
		out = append(out, *s.tasks[id])
	}
	return out
}

// Comments returns a copy of a task's comments
func (s *Server) Comments(taskID int) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Comment, 0, len(s.comments[taskID]))
	for _, c := range s.comments[taskID] {
		out = append(out, *c)
	}
	return out
}

// Requests returns every recorded request in arrival order
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests hit route
func (s *Server) Count(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Route == route {
			n++
		}
	}
	return n
}

// ResetRequests forgets recorded requests
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// ============================================================================
// MIDDLEWARE
// ============================================================================

func (s *Server) record(c *gin.Context) {
	route := c.Request.Method + " " + c.FullPath()

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Route:  route,
		Path:   c.Request.URL.Path,
		UserID: c.GetHeader("X-User-ID"),
	})
	hook := s.hooks[route]
	s.mu.Unlock()

	if hook != nil && hook(c) {
		c.Abort()
		return
	}
	c.Next()
}

func (s *Server) requireUser(c *gin.Context) {
	id, err := strconv.Atoi(c.GetHeader("X-User-ID"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID"})
		return
	}

	s.mu.Lock()
	u, ok := s.users[id]
	s.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
		return
	}
	c.Set("user", u.User)
	c.Next()
}

func currentUser(c *gin.Context) models.User {
	return c.MustGet("user").(models.User)
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// ============================================================================
// HANDLERS
// ============================================================================

func (s *Server) signup(c *gin.Context) {
	var in models.Credentials
	if err := c.ShouldBindJSON(&in); err != nil || in.Username == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == in.Username {
			c.JSON(http.StatusConflict, gin.H{"error": "username taken"})
			return
		}
	}

	role := models.RoleMember
	if len(s.users) == 0 {
		role = models.RoleAdmin
	}
	id := s.addUserLocked(in.Username, in.Password, role)
	c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
}

func (s *Server) login(c *gin.Context) {
	var in models.Credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	s.mu.Lock()
	var found *user
	for _, u := range s.users {
		if u.Username == in.Username {
			found = u
			break
		}
	}
	s.mu.Unlock()

	if found == nil || bcrypt.CompareHashAndPassword(found.hash, []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, found.User)
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.users[id].User)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listTasks(c *gin.Context) {
	me := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Task
	for _, id := range s.sortedTaskIDsLocked() {
		task := s.tasks[id]
		if me.Role.IsAdmin() || task.IsAssignedTo(me.ID) {
			out = append(out, s.withAssigneeLocked(task))
		}
	}
	// The real server encodes an empty result as null
	c.JSON(http.StatusOK, out)
}

func (s *Server) createTask(c *gin.Context) {
	if !currentUser(c).Role.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}
	var in models.CreateTaskRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.newTaskLocked(in.Title, in.AssignedTo)
	c.JSON(http.StatusCreated, s.withAssigneeLocked(task))
}

func (s *Server) updateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, sent := in["assigned_name"]; sent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "assigned_name is read-only"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	task, exists := s.tasks[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if completed, ok := in["completed"].(bool); ok {
		task.Completed = completed
	}
	if title, ok := in["title"].(string); ok && title != "" {
		task.Title = title
	}
	c.JSON(http.StatusOK, s.withAssigneeLocked(task))
}

func (s *Server) deleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, id)
	delete(s.comments, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) listComments(c *gin.Context) {
	if !currentUser(c).Role.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only Admins can view comments"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Comment
	for _, cm := range s.comments[id] {
		out = append(out, *cm)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) postComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in models.NewComment
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	me := currentUser(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tasks[id]; !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	comment := &models.Comment{TaskID: id, Username: me.Username, Content: in.Content}
	s.comments[id] = append(s.comments[id], comment)
	c.JSON(http.StatusCreated, comment)
}

// ============================================================================
// HELPERS (callers hold s.mu)
// ============================================================================

func (s *Server) addUserLocked(username, password string, role models.Role) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	id := s.nextUserID
	s.nextUserID++
	s.users[id] = &user{User: models.User{ID: id, Username: username, Role: role}, hash: hash}
	return id
}

func (s *Server) newTaskLocked(title string, assignedTo int) *models.Task {
	task := &models.Task{ID: s.nextTaskID, Title: title}
	if assignedTo > 0 {
		a := assignedTo
		task.AssignedTo = &a
	}
	s.nextTaskID++
	s.tasks[task.ID] = task
	return task
}

func (s *Server) withAssigneeLocked(task *models.Task) models.Task {
	out := *task
	out.AssignedName = ""
	if task.AssignedTo != nil {
		if u, ok := s.users[*task.AssignedTo]; ok {
			out.AssignedName = u.Username
		}
	}
	return out
}

func (s *Server) sortedTaskIDsLocked() []int {
	ids := make([]int, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
