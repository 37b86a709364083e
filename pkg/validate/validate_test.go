package validate

import "testing"

type productInput struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"required"`
	ImageURL string `json:"image_url" validate:"nullable,url"`
	Status   string `json:"status" validate:"nullable,in=pending;completed;cancelled"`
	Stock    int    `json:"stock" validate:"gte=0,lte=10000"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(productInput{
		Name:     "Curry Rice",
		Category: "mains",
		ImageURL: "https://cdn.example.com/curry.png",
		Status:   "pending",
		Stock:    12,
	})
	if HasErrors(errs) {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStructRequired(t *testing.T) {
	errs := Struct(productInput{Category: "mains"})
	if errs["name"] != "name is required" {
		t.Fatalf("name error = %q", errs["name"])
	}
	if _, ok := errs["category"]; ok {
		t.Fatal("category was set, should not error")
	}
}

func TestStructRequiredWhitespaceOnly(t *testing.T) {
	errs := Struct(productInput{Name: "   ", Category: "mains"})
	if errs["name"] != "name is required" {
		t.Fatalf("name error = %q", errs["name"])
	}
}

func TestStructNullableSkipsWhenEmpty(t *testing.T) {
	errs := Struct(productInput{Name: "Curry Rice", Category: "mains"})
	if _, ok := errs["image_url"]; ok {
		t.Fatal("empty nullable url must not error")
	}
	if _, ok := errs["status"]; ok {
		t.Fatal("empty nullable in-list must not error")
	}
}

func TestStructURL(t *testing.T) {
	errs := Struct(productInput{Name: "x", Category: "y", ImageURL: "not-a-url"})
	if errs["image_url"] != "image_url must be a valid URL" {
		t.Fatalf("image_url error = %q", errs["image_url"])
	}

	errs = Struct(productInput{Name: "x", Category: "y", ImageURL: "ftp://host/file"})
	if _, ok := errs["image_url"]; !ok {
		t.Fatal("non-http scheme must error")
	}
}

func TestStructIn(t *testing.T) {
	errs := Struct(productInput{Name: "x", Category: "y", Status: "shipped"})
	if errs["status"] != "status must be one of: pending, completed, cancelled" {
		t.Fatalf("status error = %q", errs["status"])
	}
}

func TestStructNumericBounds(t *testing.T) {
	errs := Struct(productInput{Name: "x", Category: "y", Stock: 20000})
	if errs["stock"] != "stock must be <= 10000" {
		t.Fatalf("stock error = %q", errs["stock"])
	}
}

func TestStructPointer(t *testing.T) {
	errs := Struct(&productInput{Name: "x", Category: "y"})
	if HasErrors(errs) {
		t.Fatalf("pointer input: expected no errors, got %v", errs)
	}
}

func TestStructNonStruct(t *testing.T) {
	if HasErrors(Struct(42)) {
		t.Fatal("non-struct input must validate clean")
	}
}
