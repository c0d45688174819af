package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/meowjesty/tasknest/tasks"
	"github.com/meowjesty/tasknest/users"
)

// memUserStore is an in-memory UserStore for handler tests.
type memUserStore struct {
	mu     sync.Mutex
	users  map[int64]users.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]users.User)}
}

func (s *memUserStore) Insert(_ context.Context, cmd users.InsertUser) (users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	user := users.User{ID: s.nextID, Username: cmd.ValidUsername, Password: cmd.ValidPassword}
	s.users[user.ID] = user
	return user, nil
}

func (s *memUserStore) Update(_ context.Context, cmd users.UpdateUser) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[cmd.ID]; !ok {
		return 0, nil
	}
	s.users[cmd.ID] = users.User{ID: cmd.ID, Username: cmd.ValidUsername, Password: cmd.ValidPassword}
	return 1, nil
}

func (s *memUserStore) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

func (s *memUserStore) FindAll(_ context.Context) ([]users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]users.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (s *memUserStore) FindByID(_ context.Context, id int64) (*users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *memUserStore) Login(_ context.Context, cmd users.LoginUser) (*users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == cmd.Username && u.Password == cmd.Password {
			return &u, nil
		}
	}
	return nil, nil
}

// memTaskStore is an in-memory TaskStore for handler tests.
type memTaskStore struct {
	mu         sync.Mutex
	tasks      map[int64]tasks.Task
	done       map[int64]int64 // task id -> marker id
	nextID     int64
	nextDoneID int64
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{
		tasks: make(map[int64]tasks.Task),
		done:  make(map[int64]int64),
	}
}

func (s *memTaskStore) Insert(_ context.Context, cmd tasks.InsertTask) (tasks.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	task := tasks.Task{ID: s.nextID, Title: cmd.NonEmptyTitle, Details: cmd.Details}
	s.tasks[task.ID] = task
	return task, nil
}

func (s *memTaskStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *memTaskStore) Update(_ context.Context, cmd tasks.UpdateTask) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[cmd.ID]; !ok {
		return 0, nil
	}
	s.tasks[cmd.ID] = tasks.Task{ID: cmd.ID, Title: cmd.NewTitle, Details: cmd.Details}
	return 1, nil
}

func (s *memTaskStore) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return 0, nil
	}
	delete(s.tasks, id)
	delete(s.done, id)
	return 1, nil
}

func (s *memTaskStore) Done(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return 0, nil
	}
	s.nextDoneID++
	s.done[id] = s.nextDoneID
	return s.nextDoneID, nil
}

func (s *memTaskStore) Undo(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.done[id]; !ok {
		return 0, nil
	}
	delete(s.done, id)
	return 1, nil
}

func (s *memTaskStore) FindAll(_ context.Context) ([]tasks.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked(func(tasks.Task) bool { return true }), nil
}

func (s *memTaskStore) FindOngoing(_ context.Context) ([]tasks.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked(func(t tasks.Task) bool {
		_, done := s.done[t.ID]
		return !done
	}), nil
}

func (s *memTaskStore) FindByPattern(_ context.Context, title string) ([]tasks.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked(func(t tasks.Task) bool {
		return strings.Contains(t.Title, title)
	}), nil
}

func (s *memTaskStore) FindByID(_ context.Context, id int64) (*tasks.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *memTaskStore) sortedLocked(keep func(tasks.Task) bool) []tasks.Task {
	var matched []tasks.Task
	for _, t := range s.tasks {
		if keep(t) {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}
