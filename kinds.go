package realsense

import (
	"encoding/binary"
	"math"
	"unsafe"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/e7canasta/orion-realsense/internal/sys"
)

// VideoFrame is a frame carrying a 2D image.
type VideoFrame struct {
	frame
}

func (*VideoFrame) extensionKind() Extension { return ExtensionVideoFrame }

// Width returns the image width in pixels.
func (f *VideoFrame) Width() (int, error) {
	var slot sys.Error
	v := f.api.FrameWidth(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// Height returns the image height in pixels.
func (f *VideoFrame) Height() (int, error) {
	var slot sys.Error
	v := f.api.FrameHeight(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// StrideInBytes returns the length of one image row in bytes.
func (f *VideoFrame) StrideInBytes() (int, error) {
	var slot sys.Error
	v := f.api.FrameStrideInBytes(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// BitsPerPixel returns the pixel depth in bits.
func (f *VideoFrame) BitsPerPixel() (int, error) {
	var slot sys.Error
	v := f.api.FrameBitsPerPixel(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// Resolution returns width and height as one value. Width and height are
// queried independently.
func (f *VideoFrame) Resolution() (Resolution, error) {
	width, err := f.Width()
	if err != nil {
		return Resolution{}, err
	}
	height, err := f.Height()
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Width: width, Height: height}, nil
}

// DepthFrame is a frame carrying per-pixel depth.
type DepthFrame struct {
	frame
}

func (*DepthFrame) extensionKind() Extension { return ExtensionDepthFrame }

// Distance returns the distance in metres at the given pixel. Fails for
// coordinates outside the frame.
func (f *DepthFrame) Distance(x, y int) (float32, error) {
	var slot sys.Error
	v := f.api.DepthFrameDistance(f.h, x, y, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// DisparityFrame is a stereo frame carrying disparity data.
type DisparityFrame struct {
	frame
}

func (*DisparityFrame) extensionKind() Extension { return ExtensionDisparityFrame }

// Baseline returns the stereo baseline in metres.
func (f *DisparityFrame) Baseline() (float32, error) {
	var slot sys.Error
	v := f.api.DepthStereoFrameBaseline(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// PoseFrame is a frame carrying a 6DOF pose sample.
type PoseFrame struct {
	frame
}

func (*PoseFrame) extensionKind() Extension { return ExtensionPoseFrame }

// Pose reads the pose sample by value.
func (f *PoseFrame) Pose() (PoseData, error) {
	var pose sys.PoseData
	var slot sys.Error
	f.api.PoseFrameData(f.h, &pose, &slot)
	if err := checkError(f.api, slot); err != nil {
		return PoseData{}, err
	}
	return pose, nil
}

// PointsFrame is a frame carrying a point cloud.
type PointsFrame struct {
	frame
}

func (*PointsFrame) extensionKind() Extension { return ExtensionPoints }

// PointsCount returns the number of points in the cloud.
func (f *PointsFrame) PointsCount() (int, error) {
	var slot sys.Error
	v := f.api.FramePointsCount(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return 0, err
	}
	return v, nil
}

// Vertices returns the cloud's vertex array. The slice aliases native
// memory owned by the frame and is valid only until the frame is released.
func (f *PointsFrame) Vertices() ([]Vertex, error) {
	n, err := f.PointsCount()
	if err != nil {
		return nil, err
	}
	var slot sys.Error
	p := f.api.FrameVertices(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return nil, err
	}
	if n == 0 || p == nil {
		return nil, nil
	}
	return unsafe.Slice((*Vertex)(p), n), nil
}

// TextureCoordinates returns the per-point texture coordinates. Same
// lifetime rules as Vertices.
func (f *PointsFrame) TextureCoordinates() ([]TextureCoordinate, error) {
	n, err := f.PointsCount()
	if err != nil {
		return nil, err
	}
	var slot sys.Error
	p := f.api.FrameTextureCoordinates(f.h, &slot)
	if err := checkError(f.api, slot); err != nil {
		return nil, err
	}
	if n == 0 || p == nil {
		return nil, nil
	}
	return unsafe.Slice((*TextureCoordinate)(p), n), nil
}

// MotionFrame is a frame carrying one gyroscope or accelerometer sample.
type MotionFrame struct {
	frame
}

func (*MotionFrame) extensionKind() Extension { return ExtensionMotionFrame }

// Motion decodes the frame buffer as a 3-axis float32 sample. The buffer
// length is checked before decoding; a short buffer is an error, never an
// out-of-bounds read.
func (f *MotionFrame) Motion() (r3.Vec, error) {
	data, err := f.Data()
	if err != nil {
		return r3.Vec{}, err
	}
	if len(data) < 12 {
		return r3.Vec{}, ErrShortMotionBuffer
	}
	return r3.Vec{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[0:4]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[4:8]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[8:12]))),
	}, nil
}
