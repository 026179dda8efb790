package assistant

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lanavaja/barber-platform/internal/models"
)

// Ops are the internal operations the assistant may invoke as tool calls.
// They map onto the same use cases the REST handlers use.
type Ops interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListBarbers(ctx context.Context) ([]models.User, error)
	CheckAvailability(ctx context.Context, barberID uint, date string) ([]string, error)
	CreateAppointment(ctx context.Context, clientID, barberID, serviceID uint, date, timeHM string) (*models.Appointment, error)
}

type Assistant struct {
	model *genai.GenerativeModel
	ops   Ops
}

const systemPrompt = `Eres el asistente virtual de una barbería. Ayudas a los
clientes a consultar servicios, barberos y disponibilidad, y a reservar
citas. Responde siempre en el idioma del cliente, de forma breve y amable.
Usa las herramientas disponibles para consultar datos reales; nunca
inventes horarios ni precios.`

func New(apiKey string, ops Ops) (*Assistant, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.Tools = []*genai.Tool{{FunctionDeclarations: declarations()}}

	return &Assistant{model: model, ops: ops}, nil
}

func declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        "list_services",
			Description: "Lista los servicios activos de la barbería con precio y duración.",
		},
		{
			Name:        "list_barbers",
			Description: "Lista los barberos activos.",
		},
		{
			Name:        "check_availability",
			Description: "Devuelve los huecos libres de un barbero en una fecha.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"barber_id": {Type: genai.TypeInteger, Description: "ID del barbero"},
					"date":      {Type: genai.TypeString, Description: "Fecha YYYY-MM-DD"},
				},
				Required: []string{"barber_id", "date"},
			},
		},
		{
			Name:        "create_appointment",
			Description: "Reserva una cita para el cliente actual.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"barber_id":  {Type: genai.TypeInteger, Description: "ID del barbero"},
					"service_id": {Type: genai.TypeInteger, Description: "ID del servicio"},
					"date":       {Type: genai.TypeString, Description: "Fecha YYYY-MM-DD"},
					"time":       {Type: genai.TypeString, Description: "Hora HH:MM"},
				},
				Required: []string{"barber_id", "service_id", "date", "time"},
			},
		},
	}
}

// Chat sends one user message and resolves at most one tool round-trip.
func (a *Assistant) Chat(ctx context.Context, clientID uint, message string) (string, error) {
	session := a.model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini send: %w", err)
	}

	call := functionCall(resp)
	if call == nil {
		return textOf(resp), nil
	}

	result, err := a.execute(ctx, clientID, call)
	if err != nil {
		result = map[string]any{"error": err.Error()}
	}

	resp, err = session.SendMessage(ctx, genai.FunctionResponse{
		Name:     call.Name,
		Response: result,
	})
	if err != nil {
		return "", fmt.Errorf("gemini tool response: %w", err)
	}

	return textOf(resp), nil
}

func (a *Assistant) execute(
	ctx context.Context,
	clientID uint,
	call *genai.FunctionCall,
) (map[string]any, error) {

	switch call.Name {
	case "list_services":
		services, err := a.ops.ListServices(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]map[string]any, 0, len(services))
		for _, s := range services {
			out = append(out, map[string]any{
				"id": s.ID, "name": s.Name, "price": s.Price, "duration_min": s.DurationMin,
			})
		}
		return map[string]any{"services": out}, nil

	case "list_barbers":
		barbers, err := a.ops.ListBarbers(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]map[string]any, 0, len(barbers))
		for _, b := range barbers {
			out = append(out, map[string]any{"id": b.ID, "name": b.Name})
		}
		return map[string]any{"barbers": out}, nil

	case "check_availability":
		slots, err := a.ops.CheckAvailability(ctx, argUint(call, "barber_id"), argString(call, "date"))
		if err != nil {
			return nil, err
		}
		return map[string]any{"slots": slots}, nil

	case "create_appointment":
		ap, err := a.ops.CreateAppointment(
			ctx,
			clientID,
			argUint(call, "barber_id"),
			argUint(call, "service_id"),
			argString(call, "date"),
			argString(call, "time"),
		)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"appointment_id": ap.ID,
			"date":           ap.Date.Format("2006-01-02"),
			"time":           ap.Time,
			"status":         ap.Status,
		}, nil
	}

	return nil, fmt.Errorf("unknown tool %q", call.Name)
}

func functionCall(resp *genai.GenerateContentResponse) *genai.FunctionCall {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if fc, ok := part.(genai.FunctionCall); ok {
				return &fc
			}
		}
	}
	return nil
}

func textOf(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return sb.String()
}

func argString(call *genai.FunctionCall, key string) string {
	if v, ok := call.Args[key].(string); ok {
		return v
	}
	return ""
}

func argUint(call *genai.FunctionCall, key string) uint {
	if v, ok := call.Args[key].(float64); ok {
		return uint(v)
	}
	return 0
}
