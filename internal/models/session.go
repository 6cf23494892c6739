package models

// SessionRecordVersion est la version du format persisté du profil de session.
const SessionRecordVersion = 1

// SessionRecord est la forme sérialisée du profil utilisateur dans le stockage
// local. Le token bearer est persisté séparément (enregistrement distinct),
// comme deux clés indépendantes.
type SessionRecord struct {
	Version int  `json:"version"`
	User    User `json:"user"`
}
