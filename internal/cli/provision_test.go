package cli

import (
	"path/filepath"
	"testing"

	"github.com/jhachhotu/feedback/internal/db"
	"github.com/jhachhotu/feedback/internal/models"
)

func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "provision-test.db")
}

func TestRunSeedDemoCommandCreatesTrio(t *testing.T) {
	dbPath := testDBPath(t)

	if err := RunSeedDemoCommand(dbPath); err != nil {
		t.Fatalf("seed demo: %v", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	users := db.NewUserRepository(database)

	manager, err := users.FindByNormalizedUsername("manager1")
	if err != nil {
		t.Fatalf("load manager1: %v", err)
	}
	if manager.Role != models.RoleManager {
		t.Fatalf("expected manager role, got %q", manager.Role)
	}

	roster, err := users.ListDirectReports(manager.ID)
	if err != nil {
		t.Fatalf("load roster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 direct reports, got %d", len(roster))
	}

	// Seeding twice must update in place, not duplicate.
	if err := RunSeedDemoCommand(dbPath); err != nil {
		t.Fatalf("re-seed demo: %v", err)
	}
	count, err := users.CountUsers()
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 users after re-seed, got %d", count)
	}
}

func TestRunCreateUserCommandAssignsManager(t *testing.T) {
	dbPath := testDBPath(t)

	if err := RunCreateUserCommand(dbPath, "boss", "boss@example.com", models.RoleManager, ""); err != nil {
		t.Fatalf("create manager: %v", err)
	}
	if err := RunCreateUserCommand(dbPath, "worker", "", models.RoleEmployee, "boss"); err != nil {
		t.Fatalf("create employee: %v", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	users := db.NewUserRepository(database)

	boss, err := users.FindByNormalizedUsername("boss")
	if err != nil {
		t.Fatalf("load boss: %v", err)
	}
	worker, err := users.FindByNormalizedUsername("worker")
	if err != nil {
		t.Fatalf("load worker: %v", err)
	}
	if worker.ManagerID == nil || *worker.ManagerID != boss.ID {
		t.Fatalf("expected worker to report to boss, got %v", worker.ManagerID)
	}
}

func TestRunCreateUserCommandRejectsBadInput(t *testing.T) {
	dbPath := testDBPath(t)

	if err := RunCreateUserCommand(dbPath, "", "", models.RoleEmployee, ""); err == nil {
		t.Fatal("expected error for missing username")
	}
	if err := RunCreateUserCommand(dbPath, "someone", "", "auditor", ""); err == nil {
		t.Fatal("expected error for unknown role")
	}

	// The manager reference invariant: the named manager must exist and
	// actually be a manager.
	if err := RunCreateUserCommand(dbPath, "worker", "", models.RoleEmployee, "ghost"); err == nil {
		t.Fatal("expected error for missing manager")
	}
	if err := RunCreateUserCommand(dbPath, "peer", "", models.RoleEmployee, ""); err != nil {
		t.Fatalf("create peer: %v", err)
	}
	if err := RunCreateUserCommand(dbPath, "worker", "", models.RoleEmployee, "peer"); err == nil {
		t.Fatal("expected error when the named manager is not a manager")
	}

	if err := RunCreateUserCommand(dbPath, "peer", "", models.RoleEmployee, ""); err == nil {
		t.Fatal("expected error for duplicate username")
	}
}

func TestRunCheckTeamCommand(t *testing.T) {
	dbPath := testDBPath(t)

	if err := RunSeedDemoCommand(dbPath); err != nil {
		t.Fatalf("seed demo: %v", err)
	}

	if err := RunCheckTeamCommand(dbPath, "manager1"); err != nil {
		t.Fatalf("check team: %v", err)
	}
	if err := RunCheckTeamCommand(dbPath, "employee1"); err == nil {
		t.Fatal("expected error for non-manager")
	}
	if err := RunCheckTeamCommand(dbPath, "ghost"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}
