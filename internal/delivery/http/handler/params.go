package handler

import (
	"bytes"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shuttle-hr/internal/pkg/errors"
)

// Поля multipart для загрузок. Старые клиенты шлют поле, специфичное для
// endpoint; общее "file" принимается везде.
const (
	uploadField = "file"

	fieldActiveEmployees  = "active_employees_file"
	fieldMinimalEmployees = "csv_file"
	fieldBusStops         = "bus_stop_file"
	fieldCoverageMesh     = "coverage_mesh_file"
	fieldRoute            = "route_file"
)

// paramID - числовой :id из пути
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithMessage("Invalid " + name)
	}
	return id, nil
}

// readUpload читает multipart файл целиком: сначала из field, затем из "file".
// maxBytes <= 0 снимает ограничение.
func readUpload(c *fiber.Ctx, field string, maxBytes int64) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil && field != uploadField {
		fh, err = c.FormFile(uploadField)
	}
	if err != nil {
		return nil, errors.ErrMissingFile
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, errors.ErrInvalidUpload.WithMessage("File too large").WithDetails(map[string]interface{}{
			"max_bytes": maxBytes,
			"size":      fh.Size,
		})
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.ErrInvalidUpload.WithMessage("Cannot open uploaded file")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.ErrInvalidUpload.WithMessage("Cannot read uploaded file")
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, errors.ErrInvalidUpload.WithMessage("Uploaded file is empty")
	}
	return content, nil
}
