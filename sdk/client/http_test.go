package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	client "github.com/codeedexprojects/fastbag-admin-sub001/sdk/client"
)

func TestLogin(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/adminapp/login/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if body["mobile_number"] != "9876543210" || body["password"] != "pass" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"incorrect credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","user_id":7}`))
	})
	mux.HandleFunc("/adminapp/categories/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := client.New(srv.URL)
	creds, err := c.Login(context.Background(), "9876543210", "pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if creds.AccessToken != "at" || creds.RefreshToken != "rt" || creds.UserID.String() != "7" {
		t.Fatalf("creds %+v", creds)
	}
	if _, err := c.FetchPage(context.Background(), "/adminapp/categories/", client.PageQuery{Page: 1, PageSize: 10}); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotAuth != "Bearer at" {
		t.Fatalf("auth header = %q", gotAuth)
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"incorrect credentials"}`))
	}))
	defer srv.Close()

	_, err := client.New(srv.URL).Login(context.Background(), "9876543210", "wrong")
	if !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("err = %v", err)
	}
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "incorrect credentials" {
		t.Fatalf("err = %v", err)
	}
}

func TestFetchPageShapes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/adminapp/orders/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("page_size") != "25" || q.Get("ordering") != "-created_at" || q.Get("status") != "PENDING" {
			t.Errorf("query = %v", q)
		}
		_, _ = w.Write([]byte(`{"count":104,"results":[{"id":1},{"id":2}]}`))
	})
	mux.HandleFunc("/adminapp/colors/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1},{"id":2},{"id":3}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := client.New(srv.URL)

	pr, err := c.FetchPage(context.Background(), "/adminapp/orders/", client.PageQuery{
		Page: 2, PageSize: 25, Ordering: "-created_at",
		Filters: map[string]string{"status": "PENDING"},
	})
	if err != nil {
		t.Fatalf("fetch paginated: %v", err)
	}
	if pr.TotalCount != 104 || len(pr.Rows) != 2 {
		t.Fatalf("paginated result %+v", pr)
	}

	pr, err = c.FetchPage(context.Background(), "/adminapp/colors/", client.PageQuery{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("fetch bare array: %v", err)
	}
	if pr.TotalCount != 3 || len(pr.Rows) != 3 {
		t.Fatalf("bare array result %+v", pr)
	}
}

func TestPatchEchoAndDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/adminapp/orders/42/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			_, _ = w.Write([]byte(`{"id":42,"status":"DELIVERED"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := client.New(srv.URL, client.WithToken("tok"))

	var out struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	if err := c.Patch(context.Background(), "/adminapp/orders/42/", map[string]any{"status": "DELIVERED"}, &out); err != nil {
		t.Fatalf("patch: %v", err)
	}
	if out.ID != 42 || out.Status != "DELIVERED" {
		t.Fatalf("echo %+v", out)
	}
	if err := c.Delete(context.Background(), "/adminapp/orders/42/"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestPostMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if r.FormValue("title") != "Summer sale" {
			t.Errorf("title = %q", r.FormValue("title"))
		}
		f, hdr, err := r.FormFile("image")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer f.Close()
		if hdr.Filename != "banner.png" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	err := c.PostMultipart(context.Background(), "/adminapp/carousel/",
		map[string]string{"title": "Summer sale"},
		"image", "banner.png", strings.NewReader("png-bytes"), nil)
	if err != nil {
		t.Fatalf("multipart: %v", err)
	}
}

func TestServerErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"db down"}`))
	}))
	defer srv.Close()

	err := client.New(srv.URL).Delete(context.Background(), "/adminapp/orders/1/")
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 500 || apiErr.Message != "db down" {
		t.Fatalf("err = %v", err)
	}
	if errors.Is(err, client.ErrUnauthorized) {
		t.Fatal("5xx must not read as unauthorized")
	}
}
