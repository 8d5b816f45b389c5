package models

import "testing"

func TestParseCertificateTitle(t *testing.T) {
	cases := []struct {
		in      string
		want    CertificateTitle
		wantErr bool
	}{
		{"Certificate of Enrollment", TitleEnrollment, false},
		{"enrollment", TitleEnrollment, false},
		{"  GRADES  ", TitleGrades, false},
		{"Certificate of Grades", TitleGrades, false},
		{"diploma", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseCertificateTitle(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseCertificateTitle(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseCertificateTitle(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCertificateTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseSemester(t *testing.T) {
	cases := []struct {
		in      string
		want    Semester
		wantErr bool
	}{
		{"first", SemesterFirst, false},
		{"First Semester", SemesterFirst, false},
		{"SECOND", SemesterSecond, false},
		{"second semester", SemesterSecond, false},
		{"summer", "", true},
	}
	for _, tc := range cases {
		got, err := ParseSemester(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseSemester(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSemester(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSemester(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseCertificateStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    CertificateStatus
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"Approved", StatusApproved, false},
		{" REJECTED ", StatusRejected, false},
		{"archived", "", true},
	}
	for _, tc := range cases {
		got, err := ParseCertificateStatus(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseCertificateStatus(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseCertificateStatus(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCertificateStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoleCanReview(t *testing.T) {
	if !RoleAdmin.CanReview() || !RolePersonnel.CanReview() {
		t.Fatal("admin and personnel must be reviewers")
	}
	if RoleUser.CanReview() {
		t.Fatal("grantees must not be reviewers")
	}
	if Role("manager").CanReview() {
		t.Fatal("unknown roles must not be reviewers")
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RolePersonnel, RoleUser} {
		if !r.IsValid() {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	if Role("superuser").IsValid() {
		t.Fatal("expected unknown role to be invalid")
	}
}

func TestUserFullName(t *testing.T) {
	u := User{UserFname: "Ana", UserLname: "Reyes"}
	if got := u.FullName(); got != "Ana Reyes" {
		t.Fatalf("FullName() = %q, want %q", got, "Ana Reyes")
	}

	u = User{UserFname: "Ana"}
	if got := u.FullName(); got != "Ana" {
		t.Fatalf("FullName() = %q, want %q", got, "Ana")
	}

	u = User{}
	if got := u.FullName(); got != "" {
		t.Fatalf("FullName() = %q, want empty", got)
	}
}
