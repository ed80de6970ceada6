package display

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Producto struct {
	Nombre   string          `db:"nombre"`
	Precio   decimal.Decimal `db:"precio"`
	Cantidad decimal.Decimal `db:"cantidad"`
}

// PrecioFmt renders the price with two decimals for the table template.
func (p Producto) PrecioFmt() string {
	return p.Precio.StringFixed(2)
}

type Delivery struct {
	logger *slog.Logger
	form   *template.Template
	tabla  *template.Template
}

func New(logger *slog.Logger) *Delivery {
	return &Delivery{
		logger: logger,
		form:   template.Must(template.ParseFS(templatesFS, "templates/form.html")),
		tabla:  template.Must(template.ParseFS(templatesFS, "templates/tabla.html")),
	}
}

func (d *Delivery) HealthCheck(_ context.Context) error {
	return nil
}

func (d *Delivery) AddHandlers(router fiber.Router) {
	router.Get("/", d.showForm)
	router.Post("/", d.showTable)
}

func (d *Delivery) showForm(ctx *fiber.Ctx) error {
	return d.render(ctx, d.form, nil)
}

// showTable connects with the form-supplied parameters, reads the productos
// projection and renders it. Any fault becomes an inline error fragment, never
// a failed response.
func (d *Delivery) showTable(ctx *fiber.Ctx) error {
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		ctx.FormValue("host"),
		ctx.FormValue("port"),
		ctx.FormValue("dbname"),
		ctx.FormValue("user"),
		ctx.FormValue("password"),
	)

	productos, err := d.fetchProductos(ctx.Context(), dsn)
	if err != nil {
		d.logger.Error("consulta de productos fallida", slog.Any("error", err))
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return ctx.SendString("<h3>Error: " + template.HTMLEscapeString(err.Error()) + "</h3>")
	}

	return d.render(ctx, d.tabla, productos)
}

func (d *Delivery) fetchProductos(ctx context.Context, dsn string) ([]Producto, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	productos := make([]Producto, 0)
	const query = `SELECT nombre, precio, cantidad FROM productos`
	if err = db.SelectContext(ctx, &productos, query); err != nil {
		return nil, err
	}

	return productos, nil
}

func (d *Delivery) render(ctx *fiber.Ctx, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(buf.Bytes())
}
