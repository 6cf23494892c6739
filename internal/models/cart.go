package models

// CartItem est une ligne du panier : un instantané du produit au moment de
// l'ajout, plus la quantité choisie. Le prix affiché est celui de l'instantané,
// le serveur reste la référence au moment du paiement.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartRecordVersion est la version du format persisté. Un enregistrement d'une
// version inconnue est ignoré au chargement (panier vide) plutôt que de
// planter la restauration.
const CartRecordVersion = 1

// CartRecord est la forme sérialisée du panier dans le stockage local.
type CartRecord struct {
	Version int        `json:"version"`
	Items   []CartItem `json:"items"`
}
