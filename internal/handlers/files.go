package handlers

import "mime/multipart"

// formFiles returns the files uploaded under field, tolerating a nil
// form (non-multipart requests).
func formFiles(form *multipart.Form, field string) []*multipart.FileHeader {
	if form == nil {
		return nil
	}
	return form.File[field]
}
