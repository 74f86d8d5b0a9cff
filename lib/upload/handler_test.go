package uploadhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	employeeapimodels "hr-office-backend/models/api/employee"
)

func TestInitUploadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := impl{}
	_, err := h.InitUpload(ctx, "tenant-1", "user-1", employeeapimodels.UploadInitData{
		FileName: "passport.pdf",
		FileSize: 1024,
		MimeType: "application/pdf",
	})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "запрос отменён")
}

func TestFallbackFileUrl(t *testing.T) {
	require.Equal(t, "http://files.local/bucket/upload_abc",
		FallbackFileUrl("http://files.local/bucket", "upload_abc"))
	require.Equal(t, "http://files.local/bucket/upload_abc",
		FallbackFileUrl("http://files.local/bucket/", "upload_abc"))
}

func TestGenerateUploadID(t *testing.T) {
	id := generateUploadID()
	require.Equal(t, 39, len(id))
	require.Equal(t, "upload_", id[:7])
	require.NotEqual(t, id, generateUploadID())
}
