// Package session est le magasin d'identité : profil de l'utilisateur
// connecté et token bearer, persistés localement sous deux clés distinctes.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"retail_edge_front/internal/models"
	"retail_edge_front/internal/storage"
)

// AuthAPI est le client auth distant vu du magasin de session.
type AuthAPI interface {
	Login(ctx context.Context, creds models.LoginRequest) (*models.JwtResponse, error)
	Register(ctx context.Context, profile models.RegisterRequest) (*models.JwtResponse, error)
}

// Store détient la session courante d'un navigateur. Les dérivations
// (IsLoggedIn, IsAdmin) sont des lectures pures de l'état courant.
type Store struct {
	kv       storage.Store
	auth     AuthAPI
	userKey  string
	tokenKey string

	user  *models.User
	token string
}

// NewStore restaure la session depuis le stockage local. Un enregistrement
// corrompu, d'une version inconnue ou un token expiré donnent l'état
// déconnecté, jamais une erreur.
func NewStore(ctx context.Context, kv storage.Store, auth AuthAPI, sessionID string) *Store {
	s := &Store{
		kv:       kv,
		auth:     auth,
		userKey:  "user:" + sessionID,
		tokenKey: "token:" + sessionID,
	}
	s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) {
	tokenData, err := s.kv.Get(ctx, s.tokenKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("⚠️ Lecture token impossible (%s): %v", s.tokenKey, err)
		}
		return
	}
	token := string(tokenData)
	if tokenExpired(token) {
		log.Printf("⚠️ Token expiré pour %s, session déconnectée", s.userKey)
		return
	}

	userData, err := s.kv.Get(ctx, s.userKey)
	if err != nil {
		return
	}
	var record models.SessionRecord
	if err := json.Unmarshal(userData, &record); err != nil {
		log.Printf("⚠️ Session persistée illisible (%s), repart déconnecté", s.userKey)
		return
	}
	if record.Version != models.SessionRecordVersion {
		log.Printf("⚠️ Session persistée en version %d inconnue (%s), repart déconnecté", record.Version, s.userKey)
		return
	}

	user := record.User
	s.user = &user
	s.token = token
}

// tokenExpired jette un œil au claim exp sans vérifier la signature : le token
// reste opaque pour toute décision d'autorisation, on évite juste de traîner
// une session morte jusqu'au premier 401.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Login délègue au client auth distant ; l'erreur remonte telle quelle, sans
// retry. En cas de succès le token et le profil sont persistés.
func (s *Store) Login(ctx context.Context, creds models.LoginRequest) (*models.JwtResponse, error) {
	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	s.saveAuthData(ctx, resp)
	return resp, nil
}

// Register : même contrat que Login.
func (s *Store) Register(ctx context.Context, profile models.RegisterRequest) (*models.JwtResponse, error) {
	resp, err := s.auth.Register(ctx, profile)
	if err != nil {
		return nil, err
	}
	s.saveAuthData(ctx, resp)
	return resp, nil
}

func (s *Store) saveAuthData(ctx context.Context, resp *models.JwtResponse) {
	user := models.User{
		ID:    resp.ID,
		Email: resp.Email,
		Name:  resp.Name,
		Roles: resp.Roles,
	}

	if err := s.kv.Set(ctx, s.tokenKey, []byte(resp.Token)); err != nil {
		log.Printf("⚠️ Écriture token impossible (%s): %v", s.tokenKey, err)
	}
	record := models.SessionRecord{Version: models.SessionRecordVersion, User: user}
	data, _ := json.Marshal(record)
	if err := s.kv.Set(ctx, s.userKey, data); err != nil {
		log.Printf("⚠️ Écriture session impossible (%s): %v", s.userKey, err)
	}

	s.user = &user
	s.token = resp.Token
}

// Logout efface le token et le profil persistés. La redirection vers /login
// est faite par le handler.
func (s *Store) Logout(ctx context.Context) {
	if err := s.kv.Delete(ctx, s.tokenKey, s.userKey); err != nil {
		log.Printf("⚠️ Effacement session impossible: %v", err)
	}
	s.user = nil
	s.token = ""
}

// CurrentUser renvoie le profil courant, nil si déconnecté.
func (s *Store) CurrentUser() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsLoggedIn() bool {
	return s.user != nil
}

// IsAdmin est faux sans session, vrai ssi les rôles contiennent ROLE_ADMIN.
func (s *Store) IsAdmin() bool {
	return s.user != nil && s.user.HasRole(models.RoleAdmin)
}

// Token renvoie le bearer token persisté, chaîne vide si absent. C'est le
// point d'accroche de la décoration des requêtes sortantes.
func (s *Store) Token() string {
	return s.token
}
