package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FileType string

const (
	TypeFolder FileType = "folder"
	TypeFile   FileType = "file"
	TypeImage  FileType = "image"
)

// ValidFileType reports whether t is one of the accepted file types.
func ValidFileType(t FileType) bool {
	switch t {
	case TypeFolder, TypeFile, TypeImage:
		return true
	}
	return false
}

// File is a file or folder record in the files collection.
// ParentID is nil for records at the root; LocalPath is the blob store key
// and is set exactly when Type is not folder.
type File struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	UserID    primitive.ObjectID  `bson:"userId"`
	Name      string              `bson:"name"`
	Type      FileType            `bson:"type"`
	IsPublic  bool                `bson:"isPublic"`
	ParentID  *primitive.ObjectID `bson:"parentId,omitempty"`
	LocalPath string              `bson:"localPath,omitempty"`
}

// RootParent is the wire value clients use for "no parent". Stored records
// use an absent parentId instead of a sentinel.
const RootParent = "0"

// FileResponse is the JSON shape of a file record. The blob location is
// internal and never serialized.
type FileResponse struct {
	ID       string   `json:"id"`
	UserID   string   `json:"userId"`
	Name     string   `json:"name"`
	Type     FileType `json:"type"`
	IsPublic bool     `json:"isPublic"`
	ParentID string   `json:"parentId"`
}

func (f *File) Response() FileResponse {
	parent := RootParent
	if f.ParentID != nil {
		parent = f.ParentID.Hex()
	}
	return FileResponse{
		ID:       f.ID.Hex(),
		UserID:   f.UserID.Hex(),
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: parent,
	}
}

// ThumbnailJob is the payload queued for the thumbnail worker when an
// image is uploaded.
type ThumbnailJob struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}
