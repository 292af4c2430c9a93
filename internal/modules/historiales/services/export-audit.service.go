package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"historial-clinico-core/internal/infrastructure/database/mongodb"
)

// Colección de auditoría de exportaciones
const coleccionExportaciones = "exportaciones_historial"

// ExportAuditService registra cada exportación en MongoDB. Es
// estrictamente best-effort: ninguna falla de auditoría afecta la
// exportación en curso.
type ExportAuditService struct {
	mongoClient *mongodb.Client
}

// NewExportAuditService crea el servicio de auditoría
func NewExportAuditService(mongoClient *mongodb.Client) *ExportAuditService {
	return &ExportAuditService{
		mongoClient: mongoClient,
	}
}

// RegistrarExportacion inserta el documento de auditoría de forma
// asíncrona. Si MongoDB no está disponible no hace nada.
func (s *ExportAuditService) RegistrarExportacion(idPaciente int64, dni, formato string, tamano int) {
	if !s.mongoClient.Disponible() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		documento := bson.M{
			"id_paciente": idPaciente,
			"dni":         dni,
			"formato":     formato,
			"tamano":      tamano,
			"fecha":       time.Now(),
		}

		if _, err := s.mongoClient.Collection(coleccionExportaciones).InsertOne(ctx, documento); err != nil {
			fmt.Printf("[HISTORIALES] ⚠️ Auditoría de exportación fallida: %v\n", err)
		}
	}()
}
