// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/starleap/starleap-go/internal/model"
)

func createClient(t *testing.T, h *Handler, name string, sortOrder int64) ClientResponse {
	t.Helper()

	body := `{"name":"` + name + `","logoUrl":"/uploads/logo-1.png","sortOrder":` +
		strconv.FormatInt(sortOrder, 10) + `}`
	w := executeHandler(t, h.CreateClient, newJSONRequest(t, http.MethodPost, "/clients", body, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("create client status = %d, body %s", w.Code, w.Body.String())
	}
	return unmarshalData[ClientResponse](t, w)
}

func TestClientCRUD(t *testing.T) {
	_, h := testSetup(t)

	created := createClient(t, h, "Acme Industries", 2)
	if created.Name != "Acme Industries" || created.LogoURL != "/uploads/logo-1.png" {
		t.Fatalf("created = %+v", created)
	}
	if !created.IsActive {
		t.Error("client should default to active")
	}

	// Partial update keeps name and logo.
	req := newJSONRequest(t, http.MethodPut, "/clients/1", `{"description":"partner"}`,
		map[string]string{"id": strconv.FormatInt(created.ID, 10)})
	w := executeHandler(t, h.UpdateClient, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	updated := unmarshalData[ClientResponse](t, w)
	if updated.Name != "Acme Industries" || updated.LogoURL != "/uploads/logo-1.png" {
		t.Errorf("partial update lost fields: %+v", updated)
	}
	if updated.Description == nil || *updated.Description != "partner" {
		t.Errorf("description = %v", updated.Description)
	}

	// Delete, then 404.
	w = executeHandler(t, h.DeleteClient,
		newDeleteRequest(t, "/clients/1", map[string]string{"id": strconv.FormatInt(created.ID, 10)}))
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if msg := unmarshalData[map[string]string](t, w)["message"]; msg != "Client deleted" {
		t.Errorf("message = %q", msg)
	}

	w = executeHandler(t, h.GetClient,
		newGetRequest(t, "/clients/1", map[string]string{"id": strconv.FormatInt(created.ID, 10)}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Client not found" {
		t.Errorf("message = %q", msg)
	}
}

func TestCreateClient_Validation(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.CreateClient,
		newJSONRequest(t, http.MethodPost, "/clients", `{}`, nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	details := errorDetails(t, w)
	if details["name"] != "Name is required" {
		t.Errorf("details[name] = %q", details["name"])
	}
	if details["logoUrl"] != "Logo URL is required" {
		t.Errorf("details[logoUrl] = %q", details["logoUrl"])
	}
}

func TestListClients_SortAndActiveFilter(t *testing.T) {
	_, h := testSetup(t)

	createClient(t, h, "Second", 2)
	createClient(t, h, "First", 1)
	hidden := createClient(t, h, "Hidden", 0)

	req := newJSONRequest(t, http.MethodPut, "/clients/3", `{"isActive":false}`,
		map[string]string{"id": strconv.FormatInt(hidden.ID, 10)})
	if w := executeHandler(t, h.UpdateClient, req); w.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d", w.Code)
	}

	w := executeHandler(t, h.ListClients, newGetRequest(t, "/clients", nil))
	clients, _ := unmarshalList[ClientResponse](t, w)
	if len(clients) != 2 {
		t.Fatalf("len(clients) = %d, want 2", len(clients))
	}
	if clients[0].Name != "First" || clients[1].Name != "Second" {
		t.Errorf("order = %q, %q", clients[0].Name, clients[1].Name)
	}

	w = executeHandler(t, h.ListClients, newGetRequest(t, "/clients?all=true", nil))
	clients, _ = unmarshalList[ClientResponse](t, w)
	if len(clients) != 3 {
		t.Errorf("len(all clients) = %d, want 3", len(clients))
	}
}

func TestTeamMemberCRUD(t *testing.T) {
	_, h := testSetup(t)

	body := `{"name":"Jordan Lee","position":"Lead Engineer","imageUrl":"/uploads/team-1.jpg"}`
	w := executeHandler(t, h.CreateTeamMember,
		newJSONRequest(t, http.MethodPost, "/team-members", body, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	created := unmarshalData[model.TeamMember](t, w)
	if created.Name != "Jordan Lee" || created.Position != "Lead Engineer" {
		t.Fatalf("created = %+v", created)
	}

	// Partial update keeps position and image.
	req := newJSONRequest(t, http.MethodPut, "/team-members/1", `{"name":"Jordan A. Lee"}`,
		map[string]string{"id": strconv.FormatInt(created.ID, 10)})
	w = executeHandler(t, h.UpdateTeamMember, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d", w.Code)
	}
	updated := unmarshalData[model.TeamMember](t, w)
	if updated.Name != "Jordan A. Lee" || updated.Position != "Lead Engineer" ||
		updated.ImageURL != "/uploads/team-1.jpg" {
		t.Errorf("updated = %+v", updated)
	}

	w = executeHandler(t, h.DeleteTeamMember,
		newDeleteRequest(t, "/team-members/1", map[string]string{"id": strconv.FormatInt(created.ID, 10)}))
	if msg := unmarshalData[map[string]string](t, w)["message"]; msg != "Team member deleted" {
		t.Errorf("message = %q", msg)
	}

	w = executeHandler(t, h.GetTeamMember,
		newGetRequest(t, "/team-members/1", map[string]string{"id": strconv.FormatInt(created.ID, 10)}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Team member not found" {
		t.Errorf("message = %q", msg)
	}
}

func TestCreateTeamMember_Validation(t *testing.T) {
	_, h := testSetup(t)

	w := executeHandler(t, h.CreateTeamMember,
		newJSONRequest(t, http.MethodPost, "/team-members", `{"name":"Solo"}`, nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	details := errorDetails(t, w)
	if details["position"] != "Position is required" {
		t.Errorf("details[position] = %q", details["position"])
	}
	if details["imageUrl"] != "Image URL is required" {
		t.Errorf("details[imageUrl] = %q", details["imageUrl"])
	}
	if _, ok := details["name"]; ok {
		t.Error("name was provided and must not be flagged")
	}
}
