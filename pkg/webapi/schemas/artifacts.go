package schemas

import "github.com/zsoltkebel/relica/pkg/artstore"

// ArtifactList is the collection listing payload.
type ArtifactList struct {
	Artifacts []artstore.Preview `json:"artifacts" doc:"Previews of every readable artifact"`
}

// ArtifactDetail wraps the full aggregated view of one artifact. The inner
// object spreads the stored metadata document verbatim, so its shape is
// client-defined beyond the computed id, images and relightableMedia keys.
type ArtifactDetail struct {
	Artifact map[string]any `json:"artifact" doc:"Aggregated artifact view"`
}

// ArtifactMutation acknowledges a create, update or delete.
type ArtifactMutation struct {
	ArtifactID string `json:"artifact_id" doc:"Identifier of the affected artifact"`
	Message    string `json:"message" doc:"Human-readable outcome"`
}

// RTICreated acknowledges creation of one RTI set.
type RTICreated struct {
	ArtifactID string `json:"artifact_id" doc:"Parent artifact identifier"`
	RTIID      string `json:"rti_id" doc:"Identifier of the new RTI set"`
}

// RTIDeleted acknowledges removal of one RTI set.
type RTIDeleted struct {
	ArtifactID string `json:"artifact_id" doc:"Parent artifact identifier"`
	RTIID      string `json:"rti_id" doc:"Identifier of the removed RTI set"`
}

// ArchiveResult reports an artifact archive export.
type ArchiveResult struct {
	ArtifactID string `json:"artifact_id" doc:"Archived artifact identifier"`
	Files      int    `json:"files" doc:"Number of files uploaded to the archive target"`
}
