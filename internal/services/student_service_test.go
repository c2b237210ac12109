package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/rbatista-dev/performafit/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeStudentRepo struct {
	students map[uint]models.Student
	cpfTaken bool
	updates  map[string]any
	nextID   uint
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[uint]models.Student{}}
}

func (repo *fakeStudentRepo) Create(student *models.Student) error {
	repo.nextID++
	student.ID = repo.nextID
	repo.students[student.ID] = *student
	return nil
}

func (repo *fakeStudentRepo) ListByProfessional(professionalID uint) ([]models.Student, error) {
	var result []models.Student
	for _, student := range repo.students {
		if student.ProfessionalID == professionalID {
			result = append(result, student)
		}
	}
	return result, nil
}

func (repo *fakeStudentRepo) FindOwned(studentID uint, professionalID uint) (models.Student, error) {
	student, ok := repo.students[studentID]
	if !ok || student.ProfessionalID != professionalID {
		return models.Student{}, gorm.ErrRecordNotFound
	}
	return student, nil
}

func (repo *fakeStudentRepo) ExistsByCPF(cpf string) (bool, error) {
	return repo.cpfTaken, nil
}

func (repo *fakeStudentRepo) UpdateOwned(studentID uint, professionalID uint, updates map[string]any) error {
	if _, err := repo.FindOwned(studentID, professionalID); err != nil {
		return err
	}
	repo.updates = updates
	return nil
}

func TestStudentServiceCreate_IssuesAccessCode(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	service := NewStudentService(repo)

	student, accessCode, err := service.Create(1, StudentInput{
		FullName: "  Maria Souza  ",
		CPF:      "12345678901",
		Email:    " Maria@Example.COM ",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(accessCode) != 8 {
		t.Fatalf("expected 8-character access code, got %q", accessCode)
	}
	for _, char := range accessCode {
		if !strings.ContainsRune(accessCodeAlphabet, char) {
			t.Fatalf("access code %q contains %q, outside the allowed alphabet", accessCode, char)
		}
	}

	// Only the hash is stored, and it must verify against the plain code.
	if student.AccessCodeHash == "" || student.AccessCodeHash == accessCode {
		t.Fatalf("expected hashed access code at rest")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(student.AccessCodeHash), []byte(accessCode)); err != nil {
		t.Fatalf("stored hash does not verify the issued code: %v", err)
	}

	if student.FullName != "Maria Souza" {
		t.Fatalf("expected trimmed name, got %q", student.FullName)
	}
	if student.Email != "maria@example.com" {
		t.Fatalf("expected normalized email, got %q", student.Email)
	}
	if !student.IsActive {
		t.Fatalf("new students must start active")
	}
}

func TestStudentServiceCreate_DuplicateCPF(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	repo.cpfTaken = true
	service := NewStudentService(repo)

	_, _, err := service.Create(1, StudentInput{FullName: "Ana", CPF: "12345678901"})
	if !errors.Is(err, ErrCPFTaken) {
		t.Fatalf("expected ErrCPFTaken, got %v", err)
	}
}

func TestStudentServiceRegenerateAccessCode(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	repo.students[4] = models.Student{ID: 4, ProfessionalID: 2, AccessCodeHash: "old"}
	service := NewStudentService(repo)

	code, err := service.RegenerateAccessCode(2, 4)
	if err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}
	if len(code) != 8 {
		t.Fatalf("expected 8-character code, got %q", code)
	}

	newHash, ok := repo.updates["access_code_hash"].(string)
	if !ok || newHash == "" || newHash == "old" {
		t.Fatalf("expected a fresh hash to be stored, got %v", repo.updates)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(newHash), []byte(code)); err != nil {
		t.Fatalf("new hash does not verify new code: %v", err)
	}
}

func TestStudentServiceRegenerateAccessCode_Unowned(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	repo.students[4] = models.Student{ID: 4, ProfessionalID: 2}
	service := NewStudentService(repo)

	if _, err := service.RegenerateAccessCode(9, 4); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for another professional's student, got %v", err)
	}
}

func TestStudentServiceDeactivate(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	repo.students[3] = models.Student{ID: 3, ProfessionalID: 1, IsActive: true}
	service := NewStudentService(repo)

	if err := service.Deactivate(1, 3); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if active, ok := repo.updates["is_active"].(bool); !ok || active {
		t.Fatalf("expected is_active=false update, got %v", repo.updates)
	}
}
