// Package cart est le magasin panier : la seule donnée durable possédée par
// le front. Les lignes vivent en mémoire le temps d'une requête et chaque
// mutation réécrit l'intégralité de la collection dans le stockage local.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"retail_edge_front/internal/models"
	"retail_edge_front/internal/storage"
)

// Store détient les lignes du panier d'une session navigateur, dans l'ordre
// d'insertion. Au plus une ligne par produit, quantité toujours ≥ 1.
type Store struct {
	kv    storage.Store
	key   string
	items []models.CartItem
}

// NewStore restaure le panier de la session depuis le stockage local. Un
// enregistrement absent, corrompu ou d'une version inconnue donne un panier
// vide, jamais une erreur.
func NewStore(ctx context.Context, kv storage.Store, sessionID string) *Store {
	s := &Store{kv: kv, key: "cart:" + sessionID}
	s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("⚠️ Lecture panier impossible (%s): %v", s.key, err)
		}
		return
	}

	var record models.CartRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("⚠️ Panier persisté illisible (%s), repart à vide", s.key)
		return
	}
	if record.Version != models.CartRecordVersion {
		log.Printf("⚠️ Panier persisté en version %d inconnue (%s), repart à vide", record.Version, s.key)
		return
	}
	s.items = record.Items
}

// persist réécrit toute la collection. Une écriture qui échoue est loggée et
// oubliée : l'appelant garde son panier en mémoire.
func (s *Store) persist(ctx context.Context) {
	record := models.CartRecord{Version: models.CartRecordVersion, Items: s.items}
	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("❌ Sérialisation panier impossible: %v", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		log.Printf("⚠️ Écriture panier impossible (%s): %v", s.key, err)
	}
}

// AddToCart ajoute quantity exemplaires du produit. Si une ligne existe déjà
// pour ce produit, sa quantité est incrémentée. Aucun plafond n'est appliqué
// contre product.Stock : le serveur tranche au moment de la commande.
func (s *Store) AddToCart(ctx context.Context, product models.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.persist(ctx)
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
	s.persist(ctx)
}

// UpdateQuantity remplace la quantité de la ligne (pas un incrément).
// quantity ≤ 0 vaut suppression de la ligne.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, productID)
		return
	}
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
}

// RemoveFromCart supprime la ligne du produit ; sans ligne correspondante,
// ne fait rien (mais re-persiste, comme le font toutes les mutations).
func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
}

// GetItemQuantity renvoie la quantité de la ligne du produit, 0 sinon.
func (s *Store) GetItemQuantity(productID string) int {
	for _, item := range s.items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// ClearCart vide le panier (appelé après une commande réussie).
func (s *Store) ClearCart(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Items renvoie une copie des lignes, dans l'ordre d'insertion.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount est recalculé à chaque lecture : somme des quantités.
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Total est recalculé à chaque lecture : somme des prix × quantités.
func (s *Store) Total() float64 {
	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
