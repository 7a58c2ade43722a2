// Package jsonfile implementa o banco de dados da aplicação: um único
// documento JSON carregado inteiro em memória na inicialização e reescrito
// por completo a cada mutação.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/agencyflow/agency-manager-api/internal/config"
	"github.com/agencyflow/agency-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Data são as seis coleções do documento, indexadas por ID.
type Data struct {
	Users        map[string]*domain.User
	Clients      map[string]*domain.Client
	Strategies   map[string]*domain.Strategy
	Campaigns    map[string]*domain.Campaign
	Activities   map[string]*domain.Activity
	ClientAssets map[string]*domain.ClientAsset
}

// document é o formato persistido: seis arrays de objetos.
type document struct {
	Users        []*domain.User        `json:"users"`
	Clients      []*domain.Client      `json:"clients"`
	Strategies   []*domain.Strategy    `json:"strategies"`
	Campaigns    []*domain.Campaign    `json:"campaigns"`
	Activities   []*domain.Activity    `json:"activities"`
	ClientAssets []*domain.ClientAsset `json:"clientAssets"`
}

func emptyDocument() *document {
	return &document{
		Users:        []*domain.User{},
		Clients:      []*domain.Client{},
		Strategies:   []*domain.Strategy{},
		Campaigns:    []*domain.Campaign{},
		Activities:   []*domain.Activity{},
		ClientAssets: []*domain.ClientAsset{},
	}
}

// Database mantém as coleções em memória e serializa o documento inteiro no
// disco a cada escrita. O mutex elimina a corrida de últimos-escritores entre
// requisições concorrentes dentro do processo.
type Database struct {
	path string
	mu   sync.RWMutex
	data *Data
}

// Open garante que o diretório e o arquivo existem, carrega o documento e
// popula os mapas em memória. Arquivo corrompido é substituído pelo documento
// vazio (política de descarte, ver comportamento herdado do armazenamento).
func Open(cfg config.Database) (*Database, error) {
	path := cfg.DataPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "erro ao criar diretório de dados")
	}

	doc := emptyDocument()

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := writeDocument(path, doc); err != nil {
			return nil, errors.Wrap(err, "erro ao criar arquivo de dados")
		}
		logrus.WithField("path", path).Info("Arquivo de dados criado")
	case err != nil:
		return nil, errors.Wrap(err, "erro ao ler arquivo de dados")
	default:
		if err := json.Unmarshal(raw, doc); err != nil {
			logrus.WithError(err).WithField("path", path).
				Warn("Arquivo de dados corrompido, reiniciando com documento vazio")
			doc = emptyDocument()
		}
	}

	db := &Database{
		path: path,
		data: &Data{
			Users:        make(map[string]*domain.User),
			Clients:      make(map[string]*domain.Client),
			Strategies:   make(map[string]*domain.Strategy),
			Campaigns:    make(map[string]*domain.Campaign),
			Activities:   make(map[string]*domain.Activity),
			ClientAssets: make(map[string]*domain.ClientAsset),
		},
	}

	for _, u := range doc.Users {
		db.data.Users[u.ID] = u
	}
	for _, c := range doc.Clients {
		db.data.Clients[c.ID] = c
	}
	for _, s := range doc.Strategies {
		db.data.Strategies[s.ID] = s
	}
	for _, c := range doc.Campaigns {
		db.data.Campaigns[c.ID] = c
	}
	for _, a := range doc.Activities {
		db.data.Activities[a.ID] = a
	}
	for _, a := range doc.ClientAssets {
		db.data.ClientAssets[a.ID] = a
	}

	logrus.WithFields(logrus.Fields{
		"users":        len(db.data.Users),
		"clients":      len(db.data.Clients),
		"strategies":   len(db.data.Strategies),
		"campaigns":    len(db.data.Campaigns),
		"activities":   len(db.data.Activities),
		"clientAssets": len(db.data.ClientAssets),
	}).Info("Banco de dados jsonfile inicializado")

	return db, nil
}

// Read executa fn com acesso de leitura às coleções.
func (db *Database) Read(fn func(data *Data)) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fn(db.data)
}

// Write executa fn com acesso exclusivo às coleções e em seguida reescreve o
// documento inteiro no disco. Falhas de escrita são apenas registradas em log,
// nunca propagadas ao chamador.
func (db *Database) Write(fn func(data *Data)) {
	db.mu.Lock()
	defer db.mu.Unlock()

	fn(db.data)

	if err := writeDocument(db.path, db.snapshotLocked()); err != nil {
		logrus.WithError(err).WithField("path", db.path).
			Error("Erro ao gravar arquivo de dados")
	}
}

// Snapshot grava uma cópia datada do documento no diretório informado e
// retorna o caminho gerado.
func (db *Database) Snapshot(dir string) (string, error) {
	db.mu.RLock()
	doc := db.snapshotLocked()
	db.mu.RUnlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "erro ao criar diretório de snapshots")
	}

	name := fmt.Sprintf("data-%s.json", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := writeDocument(path, doc); err != nil {
		return "", errors.Wrap(err, "erro ao gravar snapshot")
	}

	return path, nil
}

// Path retorna o caminho do arquivo de dados.
func (db *Database) Path() string {
	return db.path
}

// snapshotLocked monta o documento persistido a partir dos mapas. As coleções
// são ordenadas por data de criação para manter o arquivo estável entre
// gravações. Deve ser chamado com o mutex retido.
func (db *Database) snapshotLocked() *document {
	doc := emptyDocument()

	for _, u := range db.data.Users {
		doc.Users = append(doc.Users, u)
	}
	sort.Slice(doc.Users, func(i, j int) bool { return doc.Users[i].Username < doc.Users[j].Username })

	for _, c := range db.data.Clients {
		doc.Clients = append(doc.Clients, c)
	}
	sort.Slice(doc.Clients, func(i, j int) bool { return doc.Clients[i].CreatedAt.Before(doc.Clients[j].CreatedAt) })

	for _, s := range db.data.Strategies {
		doc.Strategies = append(doc.Strategies, s)
	}
	sort.Slice(doc.Strategies, func(i, j int) bool { return doc.Strategies[i].CreatedAt.Before(doc.Strategies[j].CreatedAt) })

	for _, c := range db.data.Campaigns {
		doc.Campaigns = append(doc.Campaigns, c)
	}
	sort.Slice(doc.Campaigns, func(i, j int) bool { return doc.Campaigns[i].CreatedAt.Before(doc.Campaigns[j].CreatedAt) })

	for _, a := range db.data.Activities {
		doc.Activities = append(doc.Activities, a)
	}
	sort.Slice(doc.Activities, func(i, j int) bool { return doc.Activities[i].CreatedAt.Before(doc.Activities[j].CreatedAt) })

	for _, a := range db.data.ClientAssets {
		doc.ClientAssets = append(doc.ClientAssets, a)
	}
	sort.Slice(doc.ClientAssets, func(i, j int) bool { return doc.ClientAssets[i].CreatedAt.Before(doc.ClientAssets[j].CreatedAt) })

	return doc
}

func writeDocument(path string, doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0o644)
}
